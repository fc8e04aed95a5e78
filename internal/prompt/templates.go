// Package prompt assembles the fixed prompt templates the generation
// endpoints send to the completion API. Pure string work, no I/O.
package prompt

import "fmt"

// Profile carries the creator profile fields every template embeds.
type Profile struct {
	Niche          string
	Promise        string
	Transformation string
	Tone           string
	Persona        string
}

func systemPrompt(p Profile) string {
	return fmt.Sprintf(`Você é o MindAI, um estrategista de conteúdo especialista em marketing digital e neuromarketing.

Perfil do criador:
- Nicho: %s
- Promessa central: %s
- Transformação que entrega: %s
- Tom de voz: %s
- Persona alvo: %s

Escreva sempre em português do Brasil, no tom de voz indicado, falando diretamente com a persona alvo.`,
		p.Niche, p.Promise, p.Transformation, p.Tone, p.Persona)
}

// ContentIdeas builds the prompt pair for the content-ideas endpoint.
func ContentIdeas(p Profile) (string, string) {
	user := "Gere 10 ideias de conteúdo originais para atrair a persona alvo. " +
		"Liste uma ideia por linha, cada uma com um título chamativo e uma frase explicando o ângulo."
	return systemPrompt(p), user
}

// NeuralContent builds the prompt pair for a single piece of content
// about tema in the requested formato.
func NeuralContent(p Profile, tema, formato string) (string, string) {
	user := fmt.Sprintf("Crie um conteúdo completo no formato \"%s\" sobre o tema \"%s\". "+
		"Use gatilhos de neuromarketing alinhados à promessa central e termine com uma chamada para ação.",
		formato, tema)
	return systemPrompt(p), user
}

// NeuroResponses builds the prompt pair asking for three reply variants
// to a received message, separated by "---" lines so the reply can be
// split with SplitThree.
func NeuroResponses(p Profile, mensagem, tipo string) (string, string) {
	user := fmt.Sprintf(`Recebi a seguinte mensagem de um seguidor no canal %s:

"%s"

Escreva exatamente três respostas diferentes para essa mensagem, cada uma com uma abordagem de neuromarketing distinta. Separe as respostas com uma linha contendo apenas "---".`,
		tipo, mensagem)
	return systemPrompt(p), user
}
