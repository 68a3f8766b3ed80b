package errors

// ToastKind is the visual severity of a dashboard notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// GenericFailureMessage is shown for any failed mutation, whatever the cause.
const GenericFailureMessage = "Não foi possível concluir a operação. Tente novamente."

// Toast is a short localized notification rendered by the dashboard.
type Toast struct {
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}

// GenericFailureToast returns the toast used for every failed mutation.
func GenericFailureToast() Toast {
	return Toast{Kind: ToastError, Message: GenericFailureMessage}
}

// SuccessToast wraps a confirmation message.
func SuccessToast(message string) Toast {
	return Toast{Kind: ToastSuccess, Message: message}
}
