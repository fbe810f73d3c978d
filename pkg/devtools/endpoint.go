package devtools

import "strings"

// EndpointType groups operations for filtering and statistics.
type EndpointType string

const (
	TypeChatCompletions        EndpointType = "chat.completions"
	TypeMessages               EndpointType = "messages"
	TypeImagesGenerations      EndpointType = "images.generations"
	TypeImagesEdits            EndpointType = "images.edits"
	TypeAudioSpeech            EndpointType = "audio.speech"
	TypeAudioTranscriptions    EndpointType = "audio.transcriptions"
	TypeAudioTranslations      EndpointType = "audio.translations"
	TypeVideoGenerations       EndpointType = "video.generations"
	TypeEmbeddings             EndpointType = "embeddings"
	TypeModerations            EndpointType = "moderations"
	TypeResponses              EndpointType = "responses"
	TypeBatchesCreate          EndpointType = "batches.create"
	TypeBatchesRetrieve        EndpointType = "batches.retrieve"
	TypeFilesList              EndpointType = "files.list"
	TypeFilesRetrieve          EndpointType = "files.retrieve"
	TypeFilesUpload            EndpointType = "files.upload"
	TypeModelsList             EndpointType = "models.list"
	TypeProviders              EndpointType = "providers"
	TypeCredits                EndpointType = "credits"
	TypeActivity               EndpointType = "activity"
	TypeHealth                 EndpointType = "health"
	TypeAnalytics              EndpointType = "analytics"
	TypeGenerationsRetrieve    EndpointType = "generations.retrieve"
	TypeProvisioningKeysList   EndpointType = "provisioning.keys.list"
	TypeProvisioningKeysCreate EndpointType = "provisioning.keys.create"
	TypeProvisioningKeysGet    EndpointType = "provisioning.keys.get"
	TypeProvisioningKeysUpdate EndpointType = "provisioning.keys.update"
	TypeProvisioningKeysDelete EndpointType = "provisioning.keys.delete"
	// TypeOther covers raw requests and operations outside the groups above.
	TypeOther EndpointType = "other"
)

var endpointTypes = map[string]EndpointType{
	"createchatcompletion":   TypeChatCompletions,
	"createanthropicmessage": TypeMessages,
	"createimage":            TypeImagesGenerations,
	"createimageedit":        TypeImagesEdits,
	"createspeech":           TypeAudioSpeech,
	"createtranscription":    TypeAudioTranscriptions,
	"createtranslation":      TypeAudioTranslations,
	"createvideo":            TypeVideoGenerations,
	"getvideo":               TypeVideoGenerations,
	"getvideocontent":        TypeVideoGenerations,
	"deletevideo":            TypeVideoGenerations,
	"createembedding":        TypeEmbeddings,
	"createmoderation":       TypeModerations,
	"createresponse":         TypeResponses,
	"createbatch":            TypeBatchesCreate,
	"retrievebatch":          TypeBatchesRetrieve,
	"listfiles":              TypeFilesList,
	"retrievefile":           TypeFilesRetrieve,
	"uploadfile":             TypeFilesUpload,
	"listmodels":             TypeModelsList,
	"listproviders":          TypeProviders,
	"getcredits":             TypeCredits,
	"getactivity":            TypeActivity,
	"healthz":                TypeHealth,
	"getanalytics":           TypeAnalytics,
	"getgeneration":          TypeGenerationsRetrieve,
	"listprovisioningkeys":   TypeProvisioningKeysList,
	"createprovisioningkey":  TypeProvisioningKeysCreate,
	"getprovisioningkey":     TypeProvisioningKeysGet,
	"updateprovisioningkey":  TypeProvisioningKeysUpdate,
	"deleteprovisioningkey":  TypeProvisioningKeysDelete,
}

// EndpointTypeFor maps an operation name to its endpoint type. Alias
// operations share the type of their primary route.
func EndpointTypeFor(operation string) EndpointType {
	key := strings.ToLower(strings.TrimSpace(operation))
	key = strings.TrimSuffix(key, "alias")
	if t, ok := endpointTypes[key]; ok {
		return t
	}
	return TypeOther
}
