package errors

var (
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid transaction input",
	}
	ErrInference = &DomainError{
		Code:    "INFERENCE_FAILED",
		Message: "inference failed",
	}
	ErrModelLoad = &DomainError{
		Code:    "MODEL_LOAD_FAILED",
		Message: "failed to load model",
	}
)
