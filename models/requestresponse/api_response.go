package requestresponse

// APIResponseDTO est l'enveloppe commune de toutes les réponses des pages.
type APIResponseDTO struct {
	Success bool        `json:"Success"`
	Status  int         `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}

// RedirectDTO accompagne une redirection du garde de navigation.
type RedirectDTO struct {
	Route    string `json:"route"`
	Location string `json:"location"`
}

func NewSuccess(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "OK"
	}
	return APIResponseDTO{Success: true, Status: status, Message: message, Data: data}
}

func NewError(status int, message string, data interface{}) APIResponseDTO {
	if message == "" {
		message = "Erreur"
	}
	return APIResponseDTO{Success: false, Status: status, Message: message, Data: data}
}

// NewRedirect décrit la destination d'une redirection dans le corps de la réponse.
func NewRedirect(status int, route, location string) APIResponseDTO {
	return APIResponseDTO{
		Success: true,
		Status:  status,
		Message: "redirection vers " + route,
		Data:    RedirectDTO{Route: route, Location: location},
	}
}
