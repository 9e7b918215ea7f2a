package apimodels

type Response struct {
	Status  string      `json:"status"`            //resultado do processamento fail/success
	Message string      `json:"message,omitempty"` //mensagem de erro
	Data    interface{} `json:"data,omitempty"`    //dados da resposta
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}
