package devtools

import (
	"bytes"
	"context"
	"path"
	"strings"
)

// AssetKind is the directory an asset is filed under.
type AssetKind string

const (
	AssetImages AssetKind = "images"
	AssetAudio  AssetKind = "audio"
	AssetVideo  AssetKind = "video"
)

// AssetPrefix starts every asset path.
const AssetPrefix = "assets/"

// AssetWriter persists binary response bodies.
type AssetWriter interface {
	SaveAsset(ctx context.Context, path string, data []byte) error
}

// AssetKindFor reports which kind of asset an endpoint returns, if any.
func AssetKindFor(typ EndpointType) (AssetKind, bool) {
	switch typ {
	case TypeImagesGenerations, TypeImagesEdits:
		return AssetImages, true
	case TypeAudioSpeech:
		return AssetAudio, true
	case TypeVideoGenerations:
		return AssetVideo, true
	}
	return "", false
}

// DetectExtension picks a file extension from the leading bytes of data,
// falling back to the usual format for kind.
func DetectExtension(kind AssetKind, data []byte) string {
	switch kind {
	case AssetImages:
		switch {
		case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
			return "png"
		case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
			return "jpg"
		case bytes.HasPrefix(data, []byte("GIF")):
			return "gif"
		case riff(data, "WEBP"):
			return "webp"
		}
		return "png"
	case AssetAudio:
		switch {
		case bytes.HasPrefix(data, []byte("RIFF")):
			return "wav"
		case len(data) > 1 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
			return "mp3"
		case bytes.HasPrefix(data, []byte("ID3")):
			return "mp3"
		case ftyp(data):
			return "m4a"
		}
		return "mp3"
	case AssetVideo:
		switch {
		case ftyp(data):
			return "mp4"
		case riff(data, "AVI "):
			return "avi"
		}
		return "mp4"
	}
	return "bin"
}

func riff(data []byte, form string) bool {
	return len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == form
}

func ftyp(data []byte) bool {
	return len(data) >= 8 && string(data[4:8]) == "ftyp"
}

// AssetPath is the store key for an asset belonging to entry id.
func AssetPath(kind AssetKind, id string, data []byte) string {
	return AssetPrefix + string(kind) + "/" + id + "." + DetectExtension(kind, data)
}

var assetContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"m4a":  "audio/mp4",
	"mp4":  "video/mp4",
	"avi":  "video/x-msvideo",
}

// AssetContentType maps an asset path to the content type it is served with.
func AssetContentType(p string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ct, ok := assetContentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
