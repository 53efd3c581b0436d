package logging

import "context"

type requestIDKey struct{}

// WithRequestID returns ctx carrying id. Loggers add it to every record
// written with that context as "request_id".
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func contextArgs(ctx context.Context, args []any) []any {
	if id := RequestIDFrom(ctx); id != "" {
		return append(args[:len(args):len(args)], "request_id", id)
	}
	return args
}
