package export

import (
	"errors"
	"net/http"

	"github.com/typemitr/typemitr/internal/documents"
)

// ErrRenderFailed indicates the PDF renderer could not produce output.
var ErrRenderFailed = errors.New("pdf rendering failed")

// MapHTTPStatus maps export errors to HTTP status codes. Document lookup
// failures keep their document-domain mapping.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrRenderFailed) {
		return http.StatusInternalServerError
	}
	return documents.MapHTTPStatus(err)
}
