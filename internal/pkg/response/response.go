package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope of every JSON response.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageMethodNotAllowed    = "method not allowed"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"

	MessageRolesRetrieved        = "roles retrieved"
	MessageRequirementsRetrieved = "role requirements retrieved"
	MessageEvaluationCompleted   = "career evaluation completed"
	MessageProjectionRetrieved   = "career projection retrieved"
	MessageRoadmapRetrieved      = "roadmap retrieved"
	MessageInterviewRetrieved    = "interview questions retrieved"
	MessageMarketRetrieved       = "job market retrieved"
	MessageNetworkRetrieved      = "skill network retrieved"
	MessageNewsRetrieved         = "career news retrieved"
	MessageHealthy               = "healthy"
	MessageDegraded              = "degraded"
)

var statusMessages = map[int]string{
	fiber.StatusOK:                  MessageOK,
	fiber.StatusBadRequest:          MessageBadRequest,
	fiber.StatusNotFound:            MessageNotFound,
	fiber.StatusMethodNotAllowed:    MessageMethodNotAllowed,
	fiber.StatusInternalServerError: MessageInternalServerError,
	fiber.StatusServiceUnavailable:  MessageDegraded,
}

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

// Error writes the envelope for a failed request. Statuses outside 100-599 become 500.
func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(SemanticResponse{Status: status, Message: message, Data: data})
}

// DefaultMessage is the envelope message used when a handler supplies none.
func DefaultMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}
