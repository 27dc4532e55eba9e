package common

import (
	"os"
	"strings"
)

func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range len(items) {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := range len(items) {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

func Filter[T any](items []T, keepFn func(T) bool) []T {
	return Reducer(items, func(kept []T, item T) []T {
		if keepFn(item) {
			kept = append(kept, item)
		}
		return kept
	}, []T{})
}

// SplitList splits a comma separated value into trimmed, non-blank items.
func SplitList(value string) []string {
	items := Mapper(strings.Split(value, ","), strings.TrimSpace)
	return Filter(items, func(item string) bool { return item != "" })
}
