package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bcalvareng-web/mindai-hub/internal/api/http/dto"
	"github.com/bcalvareng-web/mindai-hub/internal/llm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	result     string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubCompleter) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func setupGenerateRouter(h *GenerateHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/generate-content-ideas", h.ContentIdeas)
	r.POST("/api/generate-neural-content", h.NeuralContent)
	r.POST("/api/generate-neuro-responses", h.NeuroResponses)
	return r
}

func testUserProfile() *dto.UserProfile {
	return &dto.UserProfile{
		Niche:          "emagrecimento feminino",
		Promise:        "perder 5kg em 30 dias sem dietas radicais",
		Transformation: "autoestima e energia renovadas",
		Tone:           "direto e motivador",
		Persona:        "mulheres de 30 a 45 anos",
	}
}

func TestGenerateContentIdeas(t *testing.T) {
	stub := &stubCompleter{result: "1. Ideia um\n2. Ideia dois"}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.ContentIdeasRequest{UserProfile: testUserProfile()})
	req, _ := http.NewRequest("POST", "/api/generate-content-ideas", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ContentIdeasResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "1. Ideia um\n2. Ideia dois", resp.Ideas)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.lastUser, "emagrecimento feminino")
	assert.NotEmpty(t, stub.lastSystem)
}

func TestGenerateContentIdeasMissingProfile(t *testing.T) {
	stub := &stubCompleter{result: "nunca usado"}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	req, _ := http.NewRequest("POST", "/api/generate-content-ideas", bytes.NewBuffer([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Perfil do usuário não fornecido")
	assert.Equal(t, 0, stub.calls)
}

func TestGenerateContentIdeasUpstreamError(t *testing.T) {
	stub := &stubCompleter{err: &llm.HTTPError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.ContentIdeasRequest{UserProfile: testUserProfile()})
	req, _ := http.NewRequest("POST", "/api/generate-content-ideas", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao gerar conteúdo. Tente novamente.")
	assert.NotContains(t, w.Body.String(), "rate limited")
}

func TestGenerateNeuralContent(t *testing.T) {
	stub := &stubCompleter{result: "Texto completo do carrossel."}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.NeuralContentRequest{
		UserProfile: testUserProfile(),
		Tema:        "procrastinação",
		Formato:     "carrossel",
	})
	req, _ := http.NewRequest("POST", "/api/generate-neural-content", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NeuralContentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Texto completo do carrossel.", resp.Content)
	assert.Contains(t, stub.lastUser, "procrastinação")
	assert.Contains(t, stub.lastUser, "carrossel")
}

func TestGenerateNeuralContentMissingFields(t *testing.T) {
	cases := map[string]dto.NeuralContentRequest{
		"no profile": {Tema: "procrastinação", Formato: "reels"},
		"no tema":    {UserProfile: testUserProfile(), Formato: "reels"},
		"no formato": {UserProfile: testUserProfile(), Tema: "procrastinação"},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubCompleter{result: "nunca usado"}
			h := NewGenerateHandler(stub)
			r := setupGenerateRouter(h)

			body, _ := json.Marshal(payload)
			req, _ := http.NewRequest("POST", "/api/generate-neural-content", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Perfil do usuário, tema e formato são obrigatórios")
			assert.Equal(t, 0, stub.calls)
		})
	}
}

func TestGenerateNeuroResponses(t *testing.T) {
	stub := &stubCompleter{result: "Primeira resposta acolhedora para a pessoa.\n---\nSegunda resposta com um gancho de curiosidade.\n---\nTerceira resposta com chamada para ação."}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.NeuroResponsesRequest{
		UserProfile: testUserProfile(),
		Mensagem:    "Quanto custa o acompanhamento?",
		Tipo:        "direct",
	})
	req, _ := http.NewRequest("POST", "/api/generate-neuro-responses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NeuroResponsesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Responses, 3)
	assert.Equal(t, "Primeira resposta acolhedora para a pessoa.", resp.Responses[0])
	assert.Equal(t, "Segunda resposta com um gancho de curiosidade.", resp.Responses[1])
	assert.Equal(t, "Terceira resposta com chamada para ação.", resp.Responses[2])
}

func TestGenerateNeuroResponsesNoSeparators(t *testing.T) {
	stub := &stubCompleter{result: "Uma única resposta sem separadores no texto."}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.NeuroResponsesRequest{
		UserProfile: testUserProfile(),
		Mensagem:    "Oi, vi seu perfil!",
		Tipo:        "comment",
	})
	req, _ := http.NewRequest("POST", "/api/generate-neuro-responses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NeuroResponsesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Responses, 3)
	assert.Equal(t, resp.Responses[0], resp.Responses[1])
	assert.Equal(t, resp.Responses[1], resp.Responses[2])
}

func TestGenerateNeuroResponsesMissingFields(t *testing.T) {
	stub := &stubCompleter{result: "nunca usado"}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.NeuroResponsesRequest{
		UserProfile: testUserProfile(),
		Mensagem:    "Oi!",
	})
	req, _ := http.NewRequest("POST", "/api/generate-neuro-responses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Perfil do usuário, mensagem e tipo são obrigatórios")
	assert.Equal(t, 0, stub.calls)
}

func TestGenerateUpstreamUnreachable(t *testing.T) {
	stub := &stubCompleter{err: llm.ErrUnreachable}
	h := NewGenerateHandler(stub)
	r := setupGenerateRouter(h)

	body, _ := json.Marshal(dto.NeuralContentRequest{
		UserProfile: testUserProfile(),
		Tema:        "sono",
		Formato:     "post",
	})
	req, _ := http.NewRequest("POST", "/api/generate-neural-content", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao gerar conteúdo. Tente novamente.")
}
