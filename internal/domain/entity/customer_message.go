package entity

// Tipos de mensaje de cliente.
const (
	MessageTypeQuestion = "question"
	MessageTypeSupport  = "support"
	MessageTypeFeedback = "feedback"
	MessageTypeOther    = "other"
)

// Estados de un mensaje de cliente.
const (
	MessageStatusPending = "pending"
	MessageStatusSeen    = "seen"
	MessageStatusSolved  = "solved"
)

// ValidMessageType indica si el tipo pertenece a la enumeración.
func ValidMessageType(s string) bool {
	return s == MessageTypeQuestion || s == MessageTypeSupport ||
		s == MessageTypeFeedback || s == MessageTypeOther
}

// ValidMessageStatus indica si el estado pertenece a la enumeración.
func ValidMessageStatus(s string) bool {
	return s == MessageStatusPending || s == MessageStatusSeen || s == MessageStatusSolved
}

// CustomerMessage mensaje enviado por un cliente desde la tienda (no requiere cuenta).
type CustomerMessage struct {
	ID        string
	Type      string // question, support, feedback, other
	FirstName string
	LastName  string
	Email     string
	Message   string
	Status    string // pending, seen, solved
}
