package http

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_doer.go github.com/wversluys/fetcharr/pkg/http Doer
