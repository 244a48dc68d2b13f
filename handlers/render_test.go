package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amigdala/cms-backend/internal/content/repository"
	"github.com/amigdala/cms-backend/internal/content/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRenderEndpoint(t *testing.T) {
	svc := service.New(repository.NewMemoryRepo())
	g := gin.New()
	NewContentHandler(svc).Register(g, g)
	NewRenderHandler(svc).Register(g)

	// store out of display order, with an unknown extra section
	require.Equal(t, http.StatusOK, postContent(t, g, `{"section":"contact","content":{"heading":"Hablemos"}}`).Code)
	require.Equal(t, http.StatusOK, postContent(t, g, `{"section":"about","content":{"heading":"Sobre mí","profileImage":"/uploads/perfil.jpg","paragraph1":"Llevo casi 20 años acompañando procesos."}}`).Code)
	require.Equal(t, http.StatusOK, postContent(t, g, `{"section":"banner","content":{"heading":"extra"}}`).Code)

	req := httptest.NewRequest("GET", "/api/render", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sections []map[string]interface{} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// unknown section dropped, known ones in display order
	require.Len(t, resp.Sections, 2)
	require.Equal(t, "about", resp.Sections[0]["section"])
	require.Equal(t, "contact", resp.Sections[1]["section"])

	// uploaded image resolved through the proxy, emphasis applied
	about := resp.Sections[0]
	require.Equal(t, "/api/image?path=%2Fuploads%2Fperfil.jpg", about["profileImage"])
	require.Contains(t, about["paragraph1"], "<b>casi 20 años</b>")
}
