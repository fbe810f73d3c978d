package aistats

// Request and response shapes for the gateway's main routes. Fields the
// gateway treats as free-form objects are typed as map[string]any.

type ChatMessage struct {
	Role       string     `json:"role"`
	Content    any        `json:"content,omitempty"`
	Name       string     `json:"name,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

type ToolCall struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Function map[string]any `json:"function"`
}

type ProviderRoutingOptions struct {
	Only         []string `json:"only,omitempty"`
	Order        []string `json:"order,omitempty"`
	Ignore       []string `json:"ignore,omitempty"`
	IncludeAlpha *bool    `json:"include_alpha,omitempty"`
}

type DebugOptions struct {
	Enabled                *bool  `json:"enabled,omitempty"`
	ReturnUpstreamRequest  *bool  `json:"return_upstream_request,omitempty"`
	ReturnUpstreamResponse *bool  `json:"return_upstream_response,omitempty"`
	Trace                  *bool  `json:"trace,omitempty"`
	TraceLevel             string `json:"trace_level,omitempty"`
}

type ReasoningConfig struct {
	Effort  string `json:"effort,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens,omitempty"`
	CompletionTokens int64 `json:"completion_tokens,omitempty"`
	TotalTokens      int64 `json:"total_tokens,omitempty"`
}

type ChatCompletionsRequest struct {
	Model             string                  `json:"model"`
	Messages          []ChatMessage           `json:"messages"`
	System            string                  `json:"system,omitempty"`
	Temperature       *float64                `json:"temperature,omitempty"`
	TopP              *float64                `json:"top_p,omitempty"`
	TopK              *int64                  `json:"top_k,omitempty"`
	FrequencyPenalty  *float64                `json:"frequency_penalty,omitempty"`
	PresencePenalty   *float64                `json:"presence_penalty,omitempty"`
	MaxOutputTokens   *int64                  `json:"max_output_tokens,omitempty"`
	MaxToolCalls      *int64                  `json:"max_tool_calls,omitempty"`
	Seed              *int64                  `json:"seed,omitempty"`
	Stream            *bool                   `json:"stream,omitempty"`
	Logprobs          *bool                   `json:"logprobs,omitempty"`
	TopLogprobs       *int64                  `json:"top_logprobs,omitempty"`
	ParallelToolCalls *bool                   `json:"parallel_tool_calls,omitempty"`
	Tools             []map[string]any        `json:"tools,omitempty"`
	ToolChoice        any                     `json:"tool_choice,omitempty"`
	ResponseFormat    any                     `json:"response_format,omitempty"`
	Reasoning         *ReasoningConfig        `json:"reasoning,omitempty"`
	Provider          *ProviderRoutingOptions `json:"provider,omitempty"`
	Debug             *DebugOptions           `json:"debug,omitempty"`
	ServiceTier       string                  `json:"service_tier,omitempty"`
	UserID            string                  `json:"user_id,omitempty"`
	Meta              *bool                   `json:"meta,omitempty"`
	Usage             *bool                   `json:"usage,omitempty"`
}

type ChatChoice struct {
	Index        int64       `json:"index"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Message      ChatMessage `json:"message"`
}

type ChatCompletionsResponse struct {
	ID      string       `json:"id,omitempty"`
	Object  string       `json:"object,omitempty"`
	Created int64        `json:"created,omitempty"`
	Model   string       `json:"model,omitempty"`
	Choices []ChatChoice `json:"choices,omitempty"`
	Usage   *Usage       `json:"usage,omitempty"`
}

type AnthropicMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type AnthropicMessagesRequest struct {
	Model       string                  `json:"model"`
	Messages    []AnthropicMessage      `json:"messages"`
	System      string                  `json:"system,omitempty"`
	MaxTokens   *int64                  `json:"max_tokens,omitempty"`
	Temperature *float64                `json:"temperature,omitempty"`
	TopP        *float64                `json:"top_p,omitempty"`
	TopK        *int64                  `json:"top_k,omitempty"`
	Stream      *bool                   `json:"stream,omitempty"`
	Tools       []map[string]any        `json:"tools,omitempty"`
	ToolChoice  any                     `json:"tool_choice,omitempty"`
	Metadata    map[string]any          `json:"metadata,omitempty"`
	Provider    *ProviderRoutingOptions `json:"provider,omitempty"`
}

type AnthropicUsage struct {
	InputTokens  int64 `json:"input_tokens,omitempty"`
	OutputTokens int64 `json:"output_tokens,omitempty"`
}

type AnthropicMessagesResponse struct {
	ID           string           `json:"id,omitempty"`
	Type         string           `json:"type,omitempty"`
	Role         string           `json:"role,omitempty"`
	Model        string           `json:"model,omitempty"`
	Content      []map[string]any `json:"content,omitempty"`
	StopReason   string           `json:"stop_reason,omitempty"`
	StopSequence string           `json:"stop_sequence,omitempty"`
	Usage        *AnthropicUsage  `json:"usage,omitempty"`
}

type ResponsesRequest struct {
	Model              string                  `json:"model"`
	Input              any                     `json:"input,omitempty"`
	Instructions       string                  `json:"instructions,omitempty"`
	PreviousResponseID string                  `json:"previous_response_id,omitempty"`
	MaxOutputTokens    *int64                  `json:"max_output_tokens,omitempty"`
	Temperature        *float64                `json:"temperature,omitempty"`
	TopP               *float64                `json:"top_p,omitempty"`
	Stream             *bool                   `json:"stream,omitempty"`
	Store              *bool                   `json:"store,omitempty"`
	Tools              []map[string]any        `json:"tools,omitempty"`
	ToolChoice         any                     `json:"tool_choice,omitempty"`
	Reasoning          *ReasoningConfig        `json:"reasoning,omitempty"`
	Metadata           map[string]any          `json:"metadata,omitempty"`
	Provider           *ProviderRoutingOptions `json:"provider,omitempty"`
	User               string                  `json:"user,omitempty"`
}

type ResponsesResponse struct {
	ID         string           `json:"id,omitempty"`
	Object     string           `json:"object,omitempty"`
	Created    int64            `json:"created,omitempty"`
	Model      string           `json:"model,omitempty"`
	Role       string           `json:"role,omitempty"`
	Type       string           `json:"type,omitempty"`
	Content    []map[string]any `json:"content,omitempty"`
	StopReason string           `json:"stop_reason,omitempty"`
	Usage      map[string]any   `json:"usage,omitempty"`
}

type EmbeddingsRequest struct {
	Model          string `json:"model"`
	Input          any    `json:"input"`
	EncodingFormat string `json:"encoding_format,omitempty"`
	Dimensions     *int64 `json:"dimensions,omitempty"`
	User           string `json:"user,omitempty"`
}

type Embedding struct {
	Object    string    `json:"object,omitempty"`
	Index     int64     `json:"index"`
	Embedding []float64 `json:"embedding"`
}

type EmbeddingsResponse struct {
	Object string      `json:"object,omitempty"`
	Model  string      `json:"model,omitempty"`
	Data   []Embedding `json:"data"`
	Usage  *Usage      `json:"usage,omitempty"`
}

type ModerationsRequest struct {
	Model string `json:"model"`
	Input any    `json:"input"`
}

type ModerationResult struct {
	Flagged        bool               `json:"flagged"`
	Categories     map[string]bool    `json:"categories,omitempty"`
	CategoryScores map[string]float64 `json:"category_scores,omitempty"`
}

type ModerationsResponse struct {
	ID      string             `json:"id,omitempty"`
	Model   string             `json:"model,omitempty"`
	Results []ModerationResult `json:"results"`
}

type ImagesGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              *int64 `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	Quality        string `json:"quality,omitempty"`
	Style          string `json:"style,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	User           string `json:"user,omitempty"`
}

type ImagesEditRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
	Mask   string `json:"mask,omitempty"`
	N      *int64 `json:"n,omitempty"`
	Size   string `json:"size,omitempty"`
	User   string `json:"user,omitempty"`
}

type Image struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type ImagesResponse struct {
	Created int64   `json:"created,omitempty"`
	Data    []Image `json:"data"`
}

type AudioSpeechRequest struct {
	Model  string `json:"model"`
	Input  string `json:"input"`
	Voice  string `json:"voice,omitempty"`
	Format string `json:"format,omitempty"`
}

type AudioTranscriptionRequest struct {
	Model    string `json:"model"`
	AudioURL string `json:"audio_url,omitempty"`
	AudioB64 string `json:"audio_b64,omitempty"`
	Language string `json:"language,omitempty"`
}

type AudioTranslationRequest struct {
	Model       string   `json:"model"`
	AudioURL    string   `json:"audio_url,omitempty"`
	AudioB64    string   `json:"audio_b64,omitempty"`
	Language    string   `json:"language,omitempty"`
	Prompt      string   `json:"prompt,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type AudioTextResponse struct {
	Text string `json:"text"`
}

type VideoGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	AspectRatio    string `json:"aspect_ratio,omitempty"`
	Resolution     string `json:"resolution,omitempty"`
	Size           string `json:"size,omitempty"`
	Duration       *int64 `json:"duration,omitempty"`
	Seed           *int64 `json:"seed,omitempty"`
}

type VideoGenerationResponse struct {
	ID      string           `json:"id,omitempty"`
	Object  string           `json:"object,omitempty"`
	Created int64            `json:"created,omitempty"`
	Model   string           `json:"model,omitempty"`
	Status  string           `json:"status,omitempty"`
	Output  []map[string]any `json:"output,omitempty"`
}

type VideoDeleteResponse struct {
	ID      string `json:"id,omitempty"`
	Object  string `json:"object,omitempty"`
	Deleted bool   `json:"deleted"`
}

type BatchRequest struct {
	InputFileID      string         `json:"input_file_id"`
	Endpoint         string         `json:"endpoint"`
	CompletionWindow string         `json:"completion_window,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

type BatchRequestCounts struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

type BatchResponse struct {
	ID               string              `json:"id,omitempty"`
	Object           string              `json:"object,omitempty"`
	Endpoint         string              `json:"endpoint,omitempty"`
	Status           string              `json:"status,omitempty"`
	InputFileID      string              `json:"input_file_id,omitempty"`
	OutputFileID     string              `json:"output_file_id,omitempty"`
	ErrorFileID      string              `json:"error_file_id,omitempty"`
	CompletionWindow string              `json:"completion_window,omitempty"`
	CreatedAt        int64               `json:"created_at,omitempty"`
	CompletedAt      int64               `json:"completed_at,omitempty"`
	ExpiresAt        int64               `json:"expires_at,omitempty"`
	RequestCounts    *BatchRequestCounts `json:"request_counts,omitempty"`
	Metadata         map[string]any      `json:"metadata,omitempty"`
}

type FileResponse struct {
	ID        string `json:"id,omitempty"`
	Object    string `json:"object,omitempty"`
	Bytes     int64  `json:"bytes,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	Status    string `json:"status,omitempty"`
}

type ListFilesResponse struct {
	Object string         `json:"object,omitempty"`
	Data   []FileResponse `json:"data"`
}

type Model struct {
	ModelID        string           `json:"model_id,omitempty"`
	Name           string           `json:"name,omitempty"`
	OrganisationID string           `json:"organisation_id,omitempty"`
	Status         string           `json:"status,omitempty"`
	ReleaseDate    string           `json:"release_date,omitempty"`
	Aliases        []string         `json:"aliases,omitempty"`
	Endpoints      []string         `json:"endpoints,omitempty"`
	InputTypes     []string         `json:"input_types,omitempty"`
	OutputTypes    []string         `json:"output_types,omitempty"`
	Providers      []map[string]any `json:"providers,omitempty"`
}

type Provider struct {
	APIProviderID   string  `json:"api_provider_id,omitempty"`
	APIProviderName *string `json:"api_provider_name,omitempty"`
	CountryCode     *string `json:"country_code,omitempty"`
	Description     *string `json:"description,omitempty"`
	Link            *string `json:"link,omitempty"`
}

type ProvisioningKey struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Prefix      string  `json:"prefix,omitempty"`
	Scopes      string  `json:"scopes,omitempty"`
	Status      string  `json:"status,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	LastUsedAt  *string `json:"last_used_at,omitempty"`
	CreatedBy   string  `json:"created_by,omitempty"`
	TeamID      string  `json:"team_id,omitempty"`
	SoftBlocked bool    `json:"soft_blocked,omitempty"`
	// Key is only returned once, on creation.
	Key string `json:"key,omitempty"`
}

type GenerationResponse struct {
	RequestID        string           `json:"request_id,omitempty"`
	TeamID           string           `json:"team_id,omitempty"`
	KeyID            string           `json:"key_id,omitempty"`
	AppID            *string          `json:"app_id,omitempty"`
	Endpoint         string           `json:"endpoint,omitempty"`
	ModelID          string           `json:"model_id,omitempty"`
	Provider         string           `json:"provider,omitempty"`
	NativeResponseID *string          `json:"native_response_id,omitempty"`
	Stream           bool             `json:"stream,omitempty"`
	Byok             bool             `json:"byok,omitempty"`
	Success          bool             `json:"success"`
	StatusCode       float64          `json:"status_code,omitempty"`
	ErrorCode        *string          `json:"error_code,omitempty"`
	ErrorMessage     *string          `json:"error_message,omitempty"`
	LatencyMs        float64          `json:"latency_ms,omitempty"`
	GenerationMs     float64          `json:"generation_ms,omitempty"`
	Throughput       *float64         `json:"throughput,omitempty"`
	CostNanos        float64          `json:"cost_nanos,omitempty"`
	Currency         string           `json:"currency,omitempty"`
	Usage            map[string]any   `json:"usage,omitempty"`
	PricingLines     []map[string]any `json:"pricing_lines,omitempty"`
}

type ActivityEntry struct {
	RequestID string         `json:"request_id,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
	Endpoint  string         `json:"endpoint,omitempty"`
	Model     string         `json:"model,omitempty"`
	Provider  string         `json:"provider,omitempty"`
	LatencyMs int64          `json:"latency_ms,omitempty"`
	CostCents float64        `json:"cost_cents,omitempty"`
	Usage     map[string]any `json:"usage,omitempty"`
}

// ErrorResponse is the gateway's error body. Error may be a string or an
// object carrying its own message.
type ErrorResponse struct {
	OK      *bool  `json:"ok,omitempty"`
	Error   any    `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// List is the {"object":"list","data":[...]} envelope used by list routes.
type List[T any] struct {
	Object string `json:"object,omitempty"`
	Data   []T    `json:"data"`
}
