package manager

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_metadata.go github.com/wversluys/fetcharr/pkg/manager MetadataClient
