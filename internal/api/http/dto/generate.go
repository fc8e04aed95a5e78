package dto

type UserProfile struct {
	Niche          string `json:"nicho"`
	Promise        string `json:"promessa"`
	Transformation string `json:"transformacao"`
	Tone           string `json:"tom"`
	Persona        string `json:"persona"`
}

type ContentIdeasRequest struct {
	UserProfile *UserProfile `json:"userProfile"`
}

type ContentIdeasResponse struct {
	Ideas string `json:"ideas"`
}

type NeuralContentRequest struct {
	UserProfile *UserProfile `json:"userProfile"`
	Tema        string       `json:"tema"`
	Formato     string       `json:"formato"`
}

type NeuralContentResponse struct {
	Content string `json:"content"`
}

type NeuroResponsesRequest struct {
	UserProfile *UserProfile `json:"userProfile"`
	Mensagem    string       `json:"mensagem"`
	Tipo        string       `json:"tipo"`
}

type NeuroResponsesResponse struct {
	Responses []string `json:"responses"`
}
