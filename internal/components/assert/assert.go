package assert

import "fmt"

func NotEmptyStr(str string) {
	if str == "" {
		panic("expected string to be non-empty")
	}
}

// OneOf panics if value is not one of the given options.
func OneOf[T comparable](value T, options ...T) {
	for _, o := range options {
		if value == o {
			return
		}
	}
	panic(fmt.Sprintf("expected %v to be one of %v", value, options))
}
