package ctxkeys

import "context"

type key string

const userKey key = "user"

type alias = string

func set(ctx context.Context) {
	_ = context.WithValue(ctx, userKey, "u1")
	_ = context.WithValue(ctx, struct{}{}, 1)
	_ = context.WithValue(ctx, "user", "u1") // want "context key must not be of built-in type string"

	var name string = "user"
	_ = context.WithValue(ctx, name, "u1") // want "context key must not be of built-in type string"

	var a alias = "user"
	_ = context.WithValue(ctx, a, "u1") // want "context key must not be of built-in type string"

	_ = context.WithValue(ctx, 42, "u1")
}
