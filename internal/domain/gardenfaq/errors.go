package gardenfaq

import apperrors "github.com/yanqian/garden-faq/pkg/errors"

const (
	// CodeLoad marks transport failures: network errors, non-2xx responses and unparsable bodies.
	CodeLoad = "load_error"
	// CodeFormat marks a document that was fetched but does not have the expected shape.
	CodeFormat = "format_error"
)

func loadError(message string, err error) error {
	return apperrors.Wrap(CodeLoad, message, err)
}

func formatError(message string, err error) error {
	return apperrors.Wrap(CodeFormat, message, err)
}

// IsLoadError reports whether err is a retry-worthy load failure.
func IsLoadError(err error) bool {
	return apperrors.IsCode(err, CodeLoad)
}

// IsFormatError reports whether err is a document shape violation.
func IsFormatError(err error) bool {
	return apperrors.IsCode(err, CodeFormat)
}
