package download

//go:generate go run go.uber.org/mock/mockgen -package http -destination mocks/http/mock_http_client.go github.com/wversluys/fetcharr/pkg/download HTTPClient
//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_download_client.go github.com/wversluys/fetcharr/pkg/download DownloadClient,Factory
