package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bcalvareng-web/mindai-hub/internal/api/http/dto"
	"github.com/bcalvareng-web/mindai-hub/internal/llm"
	"github.com/bcalvareng-web/mindai-hub/internal/prompt"
	"github.com/gin-gonic/gin"
)

const generationFailedMessage = "Erro ao gerar conteúdo. Tente novamente."

type GenerateHandler struct {
	completer llm.Completer
}

func NewGenerateHandler(completer llm.Completer) *GenerateHandler {
	return &GenerateHandler{completer: completer}
}

// ContentIdeas produces a batch of content ideas tailored to the
// caller's profile.
func (h *GenerateHandler) ContentIdeas(c *gin.Context) {
	var req dto.ContentIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserProfile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Perfil do usuário não fornecido"})
		return
	}

	system, user := prompt.ContentIdeas(toProfile(req.UserProfile))
	ideas, err := h.completer.Complete(c.Request.Context(), system, user)
	if err != nil {
		reportUpstreamFailure(c, "content_ideas", err)
		return
	}

	c.JSON(http.StatusOK, dto.ContentIdeasResponse{Ideas: ideas})
}

// NeuralContent writes a full piece of content for the given theme and
// format.
func (h *GenerateHandler) NeuralContent(c *gin.Context) {
	var req dto.NeuralContentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserProfile == nil || req.Tema == "" || req.Formato == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Perfil do usuário, tema e formato são obrigatórios"})
		return
	}

	system, user := prompt.NeuralContent(toProfile(req.UserProfile), req.Tema, req.Formato)
	content, err := h.completer.Complete(c.Request.Context(), system, user)
	if err != nil {
		reportUpstreamFailure(c, "neural_content", err)
		return
	}

	c.JSON(http.StatusOK, dto.NeuralContentResponse{Content: content})
}

// NeuroResponses drafts three alternative replies to an audience
// message. The model is asked to separate the replies with "---" lines;
// if it does not comply the full text is returned in all three slots.
func (h *GenerateHandler) NeuroResponses(c *gin.Context) {
	var req dto.NeuroResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserProfile == nil || req.Mensagem == "" || req.Tipo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Perfil do usuário, mensagem e tipo são obrigatórios"})
		return
	}

	system, user := prompt.NeuroResponses(toProfile(req.UserProfile), req.Mensagem, req.Tipo)
	raw, err := h.completer.Complete(c.Request.Context(), system, user)
	if err != nil {
		reportUpstreamFailure(c, "neuro_responses", err)
		return
	}

	parts := prompt.SplitThree(raw)
	c.JSON(http.StatusOK, dto.NeuroResponsesResponse{Responses: parts[:]})
}

func toProfile(p *dto.UserProfile) prompt.Profile {
	return prompt.Profile{
		Niche:          p.Niche,
		Promise:        p.Promise,
		Transformation: p.Transformation,
		Tone:           p.Tone,
		Persona:        p.Persona,
	}
}

// reportUpstreamFailure logs the real provider error and hides it from
// the caller behind a generic message.
func reportUpstreamFailure(c *gin.Context, operation string, err error) {
	var httpErr *llm.HTTPError
	if errors.As(err, &httpErr) {
		slog.Error("Generation request rejected by provider",
			"operation", operation,
			"upstream_status", httpErr.StatusCode,
			"upstream_message", httpErr.Message,
		)
	} else {
		slog.Error("Generation request failed", "operation", operation, "error", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": generationFailedMessage})
}
