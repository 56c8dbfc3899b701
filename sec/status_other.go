//go:build !darwin || !cgo

package sec

func statusMessage(Status) string { return "" }
