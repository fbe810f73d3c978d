package aistats

import (
	"context"

	"github.com/phaseo/ai-stats-go/pkg/httpclient"
)

// CalculatePricing calls POST /pricing/calculate.
func (c *Client) CalculatePricing(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCalculatePricing, params, body, opts...)
}

// CreateAnthropicMessage calls POST /messages.
func (c *Client) CreateAnthropicMessage(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateAnthropicMessage, params, body, opts...)
}

// CreateBatch calls POST /batches.
func (c *Client) CreateBatch(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateBatch, params, body, opts...)
}

// CreateBatchAlias calls POST /batch.
func (c *Client) CreateBatchAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateBatchAlias, params, body, opts...)
}

// CreateChatCompletion calls POST /chat/completions.
func (c *Client) CreateChatCompletion(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateChatCompletion, params, body, opts...)
}

// CreateEmbedding calls POST /embeddings.
func (c *Client) CreateEmbedding(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateEmbedding, params, body, opts...)
}

// CreateImage calls POST /images/generations.
func (c *Client) CreateImage(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateImage, params, body, opts...)
}

// CreateImageEdit calls POST /images/edits.
func (c *Client) CreateImageEdit(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateImageEdit, params, body, opts...)
}

// CreateKeyPlaceholder calls POST /keys.
func (c *Client) CreateKeyPlaceholder(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateKeyPlaceholder, params, body, opts...)
}

// CreateModeration calls POST /moderations.
func (c *Client) CreateModeration(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateModeration, params, body, opts...)
}

// CreateOAuthClient calls POST /oauth-clients.
func (c *Client) CreateOAuthClient(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateOAuthClient, params, body, opts...)
}

// CreateOcr calls POST /ocr.
func (c *Client) CreateOcr(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateOcr, params, body, opts...)
}

// CreateProvisioningKey calls POST /management/keys.
func (c *Client) CreateProvisioningKey(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateProvisioningKey, params, body, opts...)
}

// CreateProvisioningKeyAlias calls POST /provisioning/keys.
func (c *Client) CreateProvisioningKeyAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateProvisioningKeyAlias, params, body, opts...)
}

// CreateResponse calls POST /responses.
func (c *Client) CreateResponse(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateResponse, params, body, opts...)
}

// CreateSpeech calls POST /audio/speech.
func (c *Client) CreateSpeech(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateSpeech, params, body, opts...)
}

// CreateTranscription calls POST /audio/transcriptions.
func (c *Client) CreateTranscription(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateTranscription, params, body, opts...)
}

// CreateTranslation calls POST /audio/translations.
func (c *Client) CreateTranslation(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateTranslation, params, body, opts...)
}

// CreateVideo calls POST /videos.
func (c *Client) CreateVideo(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateVideo, params, body, opts...)
}

// CreateVideoAlias calls POST /video/generations.
func (c *Client) CreateVideoAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpCreateVideoAlias, params, body, opts...)
}

// DeleteOAuthClient calls DELETE /oauth-clients/{client_id}.
func (c *Client) DeleteOAuthClient(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpDeleteOAuthClient, params, body, opts...)
}

// DeleteProvisioningKey calls DELETE /management/keys/{id}.
func (c *Client) DeleteProvisioningKey(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpDeleteProvisioningKey, params, body, opts...)
}

// DeleteProvisioningKeyAlias calls DELETE /provisioning/keys/{id}.
func (c *Client) DeleteProvisioningKeyAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpDeleteProvisioningKeyAlias, params, body, opts...)
}

// DeleteVideo calls DELETE /videos/{video_id}.
func (c *Client) DeleteVideo(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpDeleteVideo, params, body, opts...)
}

// DeleteVideoAlias calls DELETE /video/generations/{video_id}.
func (c *Client) DeleteVideoAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpDeleteVideoAlias, params, body, opts...)
}

// GenerateMusic calls POST /music/generate.
func (c *Client) GenerateMusic(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGenerateMusic, params, body, opts...)
}

// GenerateMusicAlias calls POST /music/generations.
func (c *Client) GenerateMusicAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGenerateMusicAlias, params, body, opts...)
}

// GetActivity calls GET /activity.
func (c *Client) GetActivity(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetActivity, params, body, opts...)
}

// GetAnalytics calls POST /analytics.
func (c *Client) GetAnalytics(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetAnalytics, params, body, opts...)
}

// GetCredits calls GET /credits.
func (c *Client) GetCredits(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetCredits, params, body, opts...)
}

// GetGeneration calls GET /generations.
func (c *Client) GetGeneration(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetGeneration, params, body, opts...)
}

// GetKeyPlaceholder calls GET /key.
func (c *Client) GetKeyPlaceholder(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetKeyPlaceholder, params, body, opts...)
}

// GetMusicGeneration calls GET /music/generate/{music_id}.
func (c *Client) GetMusicGeneration(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetMusicGeneration, params, body, opts...)
}

// GetMusicGenerationAlias calls GET /music/generations/{music_id}.
func (c *Client) GetMusicGenerationAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetMusicGenerationAlias, params, body, opts...)
}

// GetOAuthClient calls GET /oauth-clients/{client_id}.
func (c *Client) GetOAuthClient(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetOAuthClient, params, body, opts...)
}

// GetProviderDerankStatus calls GET /health/providers/{provider_id}/derank.
func (c *Client) GetProviderDerankStatus(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetProviderDerankStatus, params, body, opts...)
}

// GetProvisioningKey calls GET /management/keys/{id}.
func (c *Client) GetProvisioningKey(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetProvisioningKey, params, body, opts...)
}

// GetProvisioningKeyAlias calls GET /provisioning/keys/{id}.
func (c *Client) GetProvisioningKeyAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetProvisioningKeyAlias, params, body, opts...)
}

// GetVideo calls GET /videos/{video_id}.
func (c *Client) GetVideo(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetVideo, params, body, opts...)
}

// GetVideoAlias calls GET /video/generations/{video_id}.
func (c *Client) GetVideoAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetVideoAlias, params, body, opts...)
}

// GetVideoContent calls GET /videos/{video_id}/content.
func (c *Client) GetVideoContent(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetVideoContent, params, body, opts...)
}

// GetVideoContentAlias calls GET /video/generations/{video_id}/content.
func (c *Client) GetVideoContentAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpGetVideoContentAlias, params, body, opts...)
}

// Healthz calls GET /health.
func (c *Client) Healthz(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpHealthz, params, body, opts...)
}

// InvalidateGatewayKeyCache calls POST /keys/{id}/invalidate.
func (c *Client) InvalidateGatewayKeyCache(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpInvalidateGatewayKeyCache, params, body, opts...)
}

// ListEndpointsPlaceholder calls GET /endpoints.
func (c *Client) ListEndpointsPlaceholder(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListEndpointsPlaceholder, params, body, opts...)
}

// ListFiles calls GET /files.
func (c *Client) ListFiles(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListFiles, params, body, opts...)
}

// ListKeysPlaceholder calls GET /keys.
func (c *Client) ListKeysPlaceholder(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListKeysPlaceholder, params, body, opts...)
}

// ListModels calls GET /models.
func (c *Client) ListModels(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListModels, params, body, opts...)
}

// ListOAuthClients calls GET /oauth-clients.
func (c *Client) ListOAuthClients(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListOAuthClients, params, body, opts...)
}

// ListOrganisations calls GET /organisations.
func (c *Client) ListOrganisations(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListOrganisations, params, body, opts...)
}

// ListPricingModels calls GET /pricing/models.
func (c *Client) ListPricingModels(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListPricingModels, params, body, opts...)
}

// ListProviders calls GET /providers.
func (c *Client) ListProviders(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListProviders, params, body, opts...)
}

// ListProvisioningKeys calls GET /management/keys.
func (c *Client) ListProvisioningKeys(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListProvisioningKeys, params, body, opts...)
}

// ListProvisioningKeysAlias calls GET /provisioning/keys.
func (c *Client) ListProvisioningKeysAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpListProvisioningKeysAlias, params, body, opts...)
}

// RegenerateOAuthClientSecret calls POST /oauth-clients/{client_id}/regenerate-secret.
func (c *Client) RegenerateOAuthClientSecret(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpRegenerateOAuthClientSecret, params, body, opts...)
}

// RetrieveBatch calls GET /batches/{batch_id}.
func (c *Client) RetrieveBatch(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpRetrieveBatch, params, body, opts...)
}

// RetrieveBatchAlias calls GET /batch/{id}.
func (c *Client) RetrieveBatchAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpRetrieveBatchAlias, params, body, opts...)
}

// RetrieveFile calls GET /files/{file_id}.
func (c *Client) RetrieveFile(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpRetrieveFile, params, body, opts...)
}

// Root calls GET /.
func (c *Client) Root(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpRoot, params, body, opts...)
}

// UpdateOAuthClient calls PATCH /oauth-clients/{client_id}.
func (c *Client) UpdateOAuthClient(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpUpdateOAuthClient, params, body, opts...)
}

// UpdateProvisioningKey calls PATCH /management/keys/{id}.
func (c *Client) UpdateProvisioningKey(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpUpdateProvisioningKey, params, body, opts...)
}

// UpdateProvisioningKeyAlias calls PATCH /provisioning/keys/{id}.
func (c *Client) UpdateProvisioningKeyAlias(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpUpdateProvisioningKeyAlias, params, body, opts...)
}

// UploadFile calls POST /files.
func (c *Client) UploadFile(ctx context.Context, params PathParams, body []byte, opts ...CallOption) (httpclient.Response, error) {
	return c.Call(ctx, OpUploadFile, params, body, opts...)
}
