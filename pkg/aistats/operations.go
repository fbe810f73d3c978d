package aistats

import (
	"net/http"
	"sort"
	"strings"
)

// Operation is one gateway route: a method and a path template with {name}
// placeholders.
type Operation struct {
	Name   string
	Method string
	Path   string
}

// Params lists the placeholder names of the operation's template.
func (op Operation) Params() []string { return Placeholders(op.Path) }

// Resolve substitutes params into the template under policy.
func (op Operation) Resolve(params PathParams, policy PathPolicy) (string, error) {
	return resolvePath(op.Name, op.Path, params, policy, nil)
}

// Gateway routes. Alias entries mirror routes the gateway serves under a
// second path.
var (
	OpCalculatePricing            = Operation{Name: "calculatePricing", Method: http.MethodPost, Path: "/pricing/calculate"}
	OpCreateAnthropicMessage      = Operation{Name: "createAnthropicMessage", Method: http.MethodPost, Path: "/messages"}
	OpCreateBatch                 = Operation{Name: "createBatch", Method: http.MethodPost, Path: "/batches"}
	OpCreateBatchAlias            = Operation{Name: "createBatchAlias", Method: http.MethodPost, Path: "/batch"}
	OpCreateChatCompletion        = Operation{Name: "createChatCompletion", Method: http.MethodPost, Path: "/chat/completions"}
	OpCreateEmbedding             = Operation{Name: "createEmbedding", Method: http.MethodPost, Path: "/embeddings"}
	OpCreateImage                 = Operation{Name: "createImage", Method: http.MethodPost, Path: "/images/generations"}
	OpCreateImageEdit             = Operation{Name: "createImageEdit", Method: http.MethodPost, Path: "/images/edits"}
	OpCreateKeyPlaceholder        = Operation{Name: "createKeyPlaceholder", Method: http.MethodPost, Path: "/keys"}
	OpCreateModeration            = Operation{Name: "createModeration", Method: http.MethodPost, Path: "/moderations"}
	OpCreateOAuthClient           = Operation{Name: "createOAuthClient", Method: http.MethodPost, Path: "/oauth-clients"}
	OpCreateOcr                   = Operation{Name: "createOcr", Method: http.MethodPost, Path: "/ocr"}
	OpCreateProvisioningKey       = Operation{Name: "createProvisioningKey", Method: http.MethodPost, Path: "/management/keys"}
	OpCreateProvisioningKeyAlias  = Operation{Name: "createProvisioningKeyAlias", Method: http.MethodPost, Path: "/provisioning/keys"}
	OpCreateResponse              = Operation{Name: "createResponse", Method: http.MethodPost, Path: "/responses"}
	OpCreateSpeech                = Operation{Name: "createSpeech", Method: http.MethodPost, Path: "/audio/speech"}
	OpCreateTranscription         = Operation{Name: "createTranscription", Method: http.MethodPost, Path: "/audio/transcriptions"}
	OpCreateTranslation           = Operation{Name: "createTranslation", Method: http.MethodPost, Path: "/audio/translations"}
	OpCreateVideo                 = Operation{Name: "createVideo", Method: http.MethodPost, Path: "/videos"}
	OpCreateVideoAlias            = Operation{Name: "createVideoAlias", Method: http.MethodPost, Path: "/video/generations"}
	OpDeleteOAuthClient           = Operation{Name: "deleteOAuthClient", Method: http.MethodDelete, Path: "/oauth-clients/{client_id}"}
	OpDeleteProvisioningKey       = Operation{Name: "deleteProvisioningKey", Method: http.MethodDelete, Path: "/management/keys/{id}"}
	OpDeleteProvisioningKeyAlias  = Operation{Name: "deleteProvisioningKeyAlias", Method: http.MethodDelete, Path: "/provisioning/keys/{id}"}
	OpDeleteVideo                 = Operation{Name: "deleteVideo", Method: http.MethodDelete, Path: "/videos/{video_id}"}
	OpDeleteVideoAlias            = Operation{Name: "deleteVideoAlias", Method: http.MethodDelete, Path: "/video/generations/{video_id}"}
	OpGenerateMusic               = Operation{Name: "generateMusic", Method: http.MethodPost, Path: "/music/generate"}
	OpGenerateMusicAlias          = Operation{Name: "generateMusicAlias", Method: http.MethodPost, Path: "/music/generations"}
	OpGetActivity                 = Operation{Name: "getActivity", Method: http.MethodGet, Path: "/activity"}
	OpGetAnalytics                = Operation{Name: "getAnalytics", Method: http.MethodPost, Path: "/analytics"}
	OpGetCredits                  = Operation{Name: "getCredits", Method: http.MethodGet, Path: "/credits"}
	OpGetGeneration               = Operation{Name: "getGeneration", Method: http.MethodGet, Path: "/generations"}
	OpGetKeyPlaceholder           = Operation{Name: "getKeyPlaceholder", Method: http.MethodGet, Path: "/key"}
	OpGetMusicGeneration          = Operation{Name: "getMusicGeneration", Method: http.MethodGet, Path: "/music/generate/{music_id}"}
	OpGetMusicGenerationAlias     = Operation{Name: "getMusicGenerationAlias", Method: http.MethodGet, Path: "/music/generations/{music_id}"}
	OpGetOAuthClient              = Operation{Name: "getOAuthClient", Method: http.MethodGet, Path: "/oauth-clients/{client_id}"}
	OpGetProviderDerankStatus     = Operation{Name: "getProviderDerankStatus", Method: http.MethodGet, Path: "/health/providers/{provider_id}/derank"}
	OpGetProvisioningKey          = Operation{Name: "getProvisioningKey", Method: http.MethodGet, Path: "/management/keys/{id}"}
	OpGetProvisioningKeyAlias     = Operation{Name: "getProvisioningKeyAlias", Method: http.MethodGet, Path: "/provisioning/keys/{id}"}
	OpGetVideo                    = Operation{Name: "getVideo", Method: http.MethodGet, Path: "/videos/{video_id}"}
	OpGetVideoAlias               = Operation{Name: "getVideoAlias", Method: http.MethodGet, Path: "/video/generations/{video_id}"}
	OpGetVideoContent             = Operation{Name: "getVideoContent", Method: http.MethodGet, Path: "/videos/{video_id}/content"}
	OpGetVideoContentAlias        = Operation{Name: "getVideoContentAlias", Method: http.MethodGet, Path: "/video/generations/{video_id}/content"}
	OpHealthz                     = Operation{Name: "healthz", Method: http.MethodGet, Path: "/health"}
	OpInvalidateGatewayKeyCache   = Operation{Name: "invalidateGatewayKeyCache", Method: http.MethodPost, Path: "/keys/{id}/invalidate"}
	OpListEndpointsPlaceholder    = Operation{Name: "listEndpointsPlaceholder", Method: http.MethodGet, Path: "/endpoints"}
	OpListFiles                   = Operation{Name: "listFiles", Method: http.MethodGet, Path: "/files"}
	OpListKeysPlaceholder         = Operation{Name: "listKeysPlaceholder", Method: http.MethodGet, Path: "/keys"}
	OpListModels                  = Operation{Name: "listModels", Method: http.MethodGet, Path: "/models"}
	OpListOAuthClients            = Operation{Name: "listOAuthClients", Method: http.MethodGet, Path: "/oauth-clients"}
	OpListOrganisations           = Operation{Name: "listOrganisations", Method: http.MethodGet, Path: "/organisations"}
	OpListPricingModels           = Operation{Name: "listPricingModels", Method: http.MethodGet, Path: "/pricing/models"}
	OpListProviders               = Operation{Name: "listProviders", Method: http.MethodGet, Path: "/providers"}
	OpListProvisioningKeys        = Operation{Name: "listProvisioningKeys", Method: http.MethodGet, Path: "/management/keys"}
	OpListProvisioningKeysAlias   = Operation{Name: "listProvisioningKeysAlias", Method: http.MethodGet, Path: "/provisioning/keys"}
	OpRegenerateOAuthClientSecret = Operation{Name: "regenerateOAuthClientSecret", Method: http.MethodPost, Path: "/oauth-clients/{client_id}/regenerate-secret"}
	OpRetrieveBatch               = Operation{Name: "retrieveBatch", Method: http.MethodGet, Path: "/batches/{batch_id}"}
	OpRetrieveBatchAlias          = Operation{Name: "retrieveBatchAlias", Method: http.MethodGet, Path: "/batch/{id}"}
	OpRetrieveFile                = Operation{Name: "retrieveFile", Method: http.MethodGet, Path: "/files/{file_id}"}
	OpRoot                        = Operation{Name: "root", Method: http.MethodGet, Path: "/"}
	OpUpdateOAuthClient           = Operation{Name: "updateOAuthClient", Method: http.MethodPatch, Path: "/oauth-clients/{client_id}"}
	OpUpdateProvisioningKey       = Operation{Name: "updateProvisioningKey", Method: http.MethodPatch, Path: "/management/keys/{id}"}
	OpUpdateProvisioningKeyAlias  = Operation{Name: "updateProvisioningKeyAlias", Method: http.MethodPatch, Path: "/provisioning/keys/{id}"}
	OpUploadFile                  = Operation{Name: "uploadFile", Method: http.MethodPost, Path: "/files"}
)

// catalogue holds every route; keep in step with the var block above.
var catalogue = []Operation{
	OpCalculatePricing,
	OpCreateAnthropicMessage,
	OpCreateBatch,
	OpCreateBatchAlias,
	OpCreateChatCompletion,
	OpCreateEmbedding,
	OpCreateImage,
	OpCreateImageEdit,
	OpCreateKeyPlaceholder,
	OpCreateModeration,
	OpCreateOAuthClient,
	OpCreateOcr,
	OpCreateProvisioningKey,
	OpCreateProvisioningKeyAlias,
	OpCreateResponse,
	OpCreateSpeech,
	OpCreateTranscription,
	OpCreateTranslation,
	OpCreateVideo,
	OpCreateVideoAlias,
	OpDeleteOAuthClient,
	OpDeleteProvisioningKey,
	OpDeleteProvisioningKeyAlias,
	OpDeleteVideo,
	OpDeleteVideoAlias,
	OpGenerateMusic,
	OpGenerateMusicAlias,
	OpGetActivity,
	OpGetAnalytics,
	OpGetCredits,
	OpGetGeneration,
	OpGetKeyPlaceholder,
	OpGetMusicGeneration,
	OpGetMusicGenerationAlias,
	OpGetOAuthClient,
	OpGetProviderDerankStatus,
	OpGetProvisioningKey,
	OpGetProvisioningKeyAlias,
	OpGetVideo,
	OpGetVideoAlias,
	OpGetVideoContent,
	OpGetVideoContentAlias,
	OpHealthz,
	OpInvalidateGatewayKeyCache,
	OpListEndpointsPlaceholder,
	OpListFiles,
	OpListKeysPlaceholder,
	OpListModels,
	OpListOAuthClients,
	OpListOrganisations,
	OpListPricingModels,
	OpListProviders,
	OpListProvisioningKeys,
	OpListProvisioningKeysAlias,
	OpRegenerateOAuthClientSecret,
	OpRetrieveBatch,
	OpRetrieveBatchAlias,
	OpRetrieveFile,
	OpRoot,
	OpUpdateOAuthClient,
	OpUpdateProvisioningKey,
	OpUpdateProvisioningKeyAlias,
	OpUploadFile,
}

var byName = func() map[string]Operation {
	m := make(map[string]Operation, len(catalogue))
	for _, op := range catalogue {
		m[strings.ToLower(op.Name)] = op
	}
	return m
}()

// Operations returns a copy of the catalogue sorted by name.
func Operations() []Operation {
	ops := make([]Operation, len(catalogue))
	copy(ops, catalogue)
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// LookupOperation finds an operation by name, ignoring case.
func LookupOperation(name string) (Operation, bool) {
	op, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return op, ok
}
