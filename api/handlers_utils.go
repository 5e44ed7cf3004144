package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/z-marketing/sb1-fn7ghc/interfaces"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// setCacheStatusHeader sets the Cache-Status header based on cache status
func setCacheStatusHeader(w http.ResponseWriter, cacheStatus interfaces.CacheStatus) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", cacheStatus.String())
	}
}

// sendJSONBytes writes an already encoded JSON body with Content-Type,
// Content-Length and ETag headers
func sendJSONBytes(w http.ResponseWriter, statusCode int, responseBytes []byte) {
	// Calculate ETag (MD5 hash of the response)
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(statusCode)

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// sendJSONResponse encodes data and writes it with the given status
func sendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
	sendJSONBytes(w, statusCode, responseBytes)
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, body errorResponse) {
	sendJSONResponse(w, statusCode, body)
}

func getParamTrimmed(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(key))
}
