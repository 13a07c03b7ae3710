package indexer

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_searcher.go github.com/wversluys/fetcharr/pkg/indexer Searcher
