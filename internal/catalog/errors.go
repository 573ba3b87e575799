package catalog

import "fmt"

// LoadError represents an error during catalog file I/O or JSON parsing.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// EmptyCatalogError indicates the catalog loaded but contains no careers.
// This is fatal: the service cannot operate without a catalog.
type EmptyCatalogError struct {
	Path string
}

func (e *EmptyCatalogError) Error() string {
	return fmt.Sprintf("catalog at %s contains no careers", e.Path)
}

// NotFoundError indicates a career ID was not present in the catalog.
type NotFoundError struct {
	CareerID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("career %s not found in catalog", e.CareerID)
}
