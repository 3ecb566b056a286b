package handler

import (
	"encoding/json"
	"net/http"

	"techhive-users/internal/transport/httpdto"
)

// problemJSON renders RFC 9457 problem details with their own content type.
type problemJSON struct {
	problem httpdto.ProblemDetails
}

func (p problemJSON) Render(w http.ResponseWriter) error {
	p.WriteContentType(w)
	data, err := json.Marshal(p.problem)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (p problemJSON) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", httpdto.ProblemContentType)
}
