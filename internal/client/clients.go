package client

import (
	"net/http"
	"time"
)

type Clients struct {
	*GoogleTranslateAPI
	*MyMemoryAPI
	*ArticleAPI
}

func InitClients() Clients {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	return Clients{
		GoogleTranslateAPI: NewGoogleTranslateAPI(httpClient),
		MyMemoryAPI:        NewMyMemoryAPI(httpClient),
		ArticleAPI:         NewArticleAPI(httpClient),
	}
}
