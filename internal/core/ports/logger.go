// Package ports defines the interfaces between the build engines and the outside world.
package ports

// Logger reports build progress to the operator. Error renders the whole zerr chain.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
