package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bcalvareng-web/mindai-hub/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StubReply is what the fake completion upstream returns. The "---"
// separators let the neuro-responses scenario exercise the splitter.
const StubReply = "Primeira resposta pensada para acolher o seguidor.\n---\nSegunda resposta trazendo prova social.\n---\nTerceira resposta com um convite direto."

func stubProfile() *dto.UserProfile {
	return &dto.UserProfile{
		Niche:          "emagrecimento feminino",
		Promise:        "perder 5kg em 30 dias sem dietas radicais",
		Transformation: "autoestima e energia renovadas",
		Tone:           "direto e motivador",
		Persona:        "mulheres de 30 a 45 anos",
	}
}

func TestGeneration(t *testing.T, router *gin.Engine) {
	t.Run("content ideas", func(t *testing.T) {
		body := dto.ContentIdeasRequest{UserProfile: stubProfile()}
		rr := doJSON(router, "POST", "/api/generate-content-ideas", body)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.ContentIdeasResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, StubReply, resp.Ideas)
	})

	t.Run("content ideas without profile", func(t *testing.T) {
		rr := doJSON(router, "POST", "/api/generate-content-ideas", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Perfil do usuário não fornecido")
	})

	t.Run("neural content", func(t *testing.T) {
		body := dto.NeuralContentRequest{
			UserProfile: stubProfile(),
			Tema:        "procrastinação",
			Formato:     "carrossel",
		}
		rr := doJSON(router, "POST", "/api/generate-neural-content", body)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.NeuralContentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, StubReply, resp.Content)
	})

	t.Run("neural content missing fields", func(t *testing.T) {
		body := dto.NeuralContentRequest{UserProfile: stubProfile(), Tema: "procrastinação"}
		rr := doJSON(router, "POST", "/api/generate-neural-content", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Perfil do usuário, tema e formato são obrigatórios")
	})

	t.Run("neuro responses split in three", func(t *testing.T) {
		body := dto.NeuroResponsesRequest{
			UserProfile: stubProfile(),
			Mensagem:    "Quanto custa o acompanhamento?",
			Tipo:        "direct",
		}
		rr := doJSON(router, "POST", "/api/generate-neuro-responses", body)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.NeuroResponsesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Responses, 3)
		assert.Equal(t, "Primeira resposta pensada para acolher o seguidor.", resp.Responses[0])
		assert.Equal(t, "Segunda resposta trazendo prova social.", resp.Responses[1])
		assert.Equal(t, "Terceira resposta com um convite direto.", resp.Responses[2])
	})

	t.Run("neuro responses missing fields", func(t *testing.T) {
		body := dto.NeuroResponsesRequest{UserProfile: stubProfile(), Tipo: "comment"}
		rr := doJSON(router, "POST", "/api/generate-neuro-responses", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Perfil do usuário, mensagem e tipo são obrigatórios")
	})
}

func TestGenerationUpstreamError(t *testing.T, router *gin.Engine) {
	body := dto.ContentIdeasRequest{UserProfile: stubProfile()}
	rr := doJSON(router, "POST", "/api/generate-content-ideas", body)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Erro ao gerar conteúdo. Tente novamente.")
	assert.NotContains(t, rr.Body.String(), "quota exceeded")
}
