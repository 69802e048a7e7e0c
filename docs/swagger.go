// Package docs registers the RadioAI OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

// @title RadioAI API
// @version 1.0
// @description AI narrated news radio: articles, narration, library and live streams

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func init() {
	swag.Register(swag.Name, &swag.Spec{
		InfoInstanceName: "swagger",
		SwaggerTemplate:  docTemplate,
	})
}

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "RadioAI API",
        "description": "AI narrated news radio: articles, narration, library and live streams",
        "version": "1.0.0",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        }
    },
    "host": "localhost:5000",
    "basePath": "/",
    "schemes": ["http", "https"],
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "operationId": "healthCheck",
                "responses": {
                    "200": {
                        "description": "Service is healthy",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "status": {"type": "string", "example": "healthy"},
                                "service": {"type": "string", "example": "radioai"},
                                "poller_active": {"type": "boolean"}
                            }
                        }
                    }
                }
            }
        },
        "/api/articles": {
            "get": {
                "tags": ["Articles"],
                "summary": "List articles, newest first",
                "operationId": "getArticles",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string", "description": "Category filter; All or empty means every category"},
                    {"name": "limit", "in": "query", "type": "integer", "default": 20},
                    {"name": "offset", "in": "query", "type": "integer", "default": 0}
                ],
                "responses": {
                    "200": {"description": "Articles", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}},
                    "400": {"description": "Invalid paging", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["Articles"],
                "summary": "Create an article",
                "operationId": "createArticle",
                "parameters": [
                    {"name": "article", "in": "body", "required": true, "schema": {"$ref": "#/definitions/InsertArticle"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Article"}},
                    "400": {"description": "Invalid article data", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/articles/featured": {
            "get": {
                "tags": ["Articles"],
                "summary": "Featured articles",
                "operationId": "getFeaturedArticles",
                "responses": {"200": {"description": "Up to three articles", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}}}
            }
        },
        "/api/articles/trending": {
            "get": {
                "tags": ["Articles"],
                "summary": "Trending articles",
                "operationId": "getTrendingArticles",
                "responses": {"200": {"description": "Up to six articles", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}}}
            }
        },
        "/api/articles/search": {
            "get": {
                "tags": ["Articles"],
                "summary": "Search titles, summaries and content",
                "operationId": "searchArticles",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true},
                    {"name": "category", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Matches", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}},
                    "400": {"description": "Search query is required", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/articles/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Get an article",
                "operationId": "getArticle",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Article", "schema": {"$ref": "#/definitions/Article"}},
                    "404": {"description": "Article not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/articles/{id}/audio": {
            "get": {
                "tags": ["Narration"],
                "summary": "Narrated MP3 of an article",
                "operationId": "getArticleAudio",
                "produces": ["audio/mpeg"],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Audio bytes"},
                    "404": {"description": "Article not found"},
                    "500": {"description": "Failed to generate audio"},
                    "503": {"description": "AI service is not configured"}
                }
            }
        },
        "/api/articles/{id}/enhance": {
            "post": {
                "tags": ["Narration"],
                "summary": "Rewrite an article with AI context",
                "operationId": "enhanceArticle",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Processed article", "schema": {"$ref": "#/definitions/Article"}},
                    "503": {"description": "AI service is not configured"}
                }
            }
        },
        "/api/articles/{id}/summary": {
            "post": {
                "tags": ["Narration"],
                "summary": "Generate a short summary",
                "operationId": "summarizeArticle",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "Summary"}}
            }
        },
        "/api/categories": {
            "get": {
                "tags": ["Articles"],
                "summary": "Known categories",
                "operationId": "getCategories",
                "responses": {"200": {"description": "Category names", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/api/insights": {
            "get": {
                "tags": ["Articles"],
                "summary": "Key topics and an insight over the latest articles",
                "operationId": "getInsights",
                "responses": {"200": {"description": "Topics and insight"}}
            }
        },
        "/api/favorites": {
            "get": {"tags": ["Library"], "summary": "Favorite articles", "operationId": "getFavorites", "responses": {"200": {"description": "Articles"}}},
            "post": {
                "tags": ["Library"],
                "summary": "Add a favorite",
                "operationId": "addFavorite",
                "parameters": [{"name": "favorite", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ArticleRef"}}],
                "responses": {"201": {"description": "Favorite"}, "400": {"description": "Article ID is required"}}
            }
        },
        "/api/favorites/{articleId}": {
            "delete": {
                "tags": ["Library"],
                "summary": "Remove a favorite",
                "operationId": "removeFavorite",
                "parameters": [{"name": "articleId", "in": "path", "type": "integer", "required": true}],
                "responses": {"204": {"description": "Removed"}, "404": {"description": "Favorite not found"}}
            }
        },
        "/api/favorites/{articleId}/check": {
            "get": {
                "tags": ["Library"],
                "summary": "Is the article a favorite",
                "operationId": "checkFavorite",
                "parameters": [{"name": "articleId", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "isFavorite flag"}}
            }
        },
        "/api/playlists": {
            "get": {"tags": ["Library"], "summary": "Own playlists", "operationId": "getPlaylists", "responses": {"200": {"description": "Playlists"}}},
            "post": {"tags": ["Library"], "summary": "Create a playlist", "operationId": "createPlaylist", "responses": {"201": {"description": "Playlist"}, "400": {"description": "Invalid playlist data"}}}
        },
        "/api/playlists/{id}": {
            "get": {"tags": ["Library"], "summary": "Get a playlist", "operationId": "getPlaylist", "responses": {"200": {"description": "Playlist"}, "404": {"description": "Playlist not found"}}},
            "delete": {"tags": ["Library"], "summary": "Delete a playlist", "operationId": "deletePlaylist", "responses": {"204": {"description": "Deleted"}, "404": {"description": "Playlist not found"}}}
        },
        "/api/playlists/{id}/articles": {
            "get": {"tags": ["Library"], "summary": "Playlist articles in playlist order", "operationId": "getPlaylistArticles", "responses": {"200": {"description": "Articles"}}}
        },
        "/api/downloads": {
            "get": {"tags": ["Library"], "summary": "Offline downloads", "operationId": "getDownloads", "responses": {"200": {"description": "Articles"}}},
            "post": {"tags": ["Library"], "summary": "Mark an article as downloaded", "operationId": "addDownload", "responses": {"201": {"description": "Downloaded"}}}
        },
        "/api/downloads/{articleId}": {
            "delete": {"tags": ["Library"], "summary": "Remove a download", "operationId": "removeDownload", "responses": {"200": {"description": "Removed"}, "404": {"description": "Download not found"}}}
        },
        "/api/history": {
            "get": {"tags": ["History"], "summary": "Listening history, most recent first", "operationId": "getHistory", "responses": {"200": {"description": "Articles"}}},
            "post": {"tags": ["History"], "summary": "Record progress", "operationId": "recordHistory", "responses": {"200": {"description": "History entry"}}}
        },
        "/api/history/progress": {
            "post": {"tags": ["History"], "summary": "Upsert playback progress", "operationId": "updateProgress", "responses": {"200": {"description": "History entry"}}}
        },
        "/api/history/{articleId}/progress": {
            "get": {"tags": ["History"], "summary": "Playback progress of an article", "operationId": "getProgress", "responses": {"200": {"description": "Progress"}}}
        },
        "/api/notifications": {
            "get": {"tags": ["Notifications"], "summary": "Notification feed", "operationId": "getNotifications", "responses": {"200": {"description": "Notifications"}}},
            "post": {"tags": ["Notifications"], "summary": "Push a custom notification", "operationId": "pushNotification", "responses": {"201": {"description": "Notification"}}}
        },
        "/api/notifications/mark-read": {
            "post": {"tags": ["Notifications"], "summary": "Mark a notification as read", "operationId": "markNotificationRead", "responses": {"200": {"description": "Marked"}}}
        },
        "/api/podcasts": {
            "get": {"tags": ["Media"], "summary": "Podcasts", "operationId": "getPodcasts", "responses": {"200": {"description": "Podcasts"}}}
        },
        "/api/podcasts/{id}": {
            "get": {"tags": ["Media"], "summary": "Get a podcast", "operationId": "getPodcast", "responses": {"200": {"description": "Podcast"}, "404": {"description": "Podcast not found"}}}
        },
        "/api/podcasts/{id}/episodes": {
            "get": {"tags": ["Media"], "summary": "Podcast episodes, newest first", "operationId": "getPodcastEpisodes", "responses": {"200": {"description": "Episodes"}}}
        },
        "/api/shares": {
            "get": {"tags": ["Media"], "summary": "Own shares", "operationId": "getShares", "responses": {"200": {"description": "Shares"}}},
            "post": {"tags": ["Media"], "summary": "Record a share", "operationId": "shareContent", "responses": {"200": {"description": "Share"}}}
        },
        "/api/live-streams": {
            "get": {
                "tags": ["Media"],
                "summary": "Live streams",
                "operationId": "getLiveStreams",
                "parameters": [{"name": "category", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "Streams"}}
            }
        },
        "/api/live-streams/{id}": {
            "get": {"tags": ["Media"], "summary": "Get a live stream", "operationId": "getLiveStream", "responses": {"200": {"description": "Stream"}, "404": {"description": "Live stream not found"}}}
        },
        "/api/live-streams/{id}/status": {
            "patch": {"tags": ["Media"], "summary": "Update live state and listener count", "operationId": "updateStreamStatus", "responses": {"200": {"description": "Stream"}, "404": {"description": "Live stream not found"}}}
        },
        "/api/profile": {
            "get": {"tags": ["Identity"], "summary": "Current user", "operationId": "getProfile", "responses": {"200": {"description": "User"}, "404": {"description": "User not found"}}}
        },
        "/api/poller/status": {
            "get": {"tags": ["Ingestion"], "summary": "Poller state and last poll times", "operationId": "getPollerStatus", "responses": {"200": {"description": "Status"}, "503": {"description": "Feed ingestion is not enabled"}}}
        },
        "/api/poller/force-poll/{topic}": {
            "post": {
                "tags": ["Ingestion"],
                "summary": "Poll one feed source now",
                "operationId": "forcePollTopic",
                "parameters": [{"name": "topic", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Number of articles added"},
                    "404": {"description": "Feed source not found"},
                    "503": {"description": "Feed ingestion is not enabled"}
                }
            }
        },
        "/api/poller/last-polled": {
            "get": {"tags": ["Ingestion"], "summary": "Last poll time per source", "operationId": "getLastPolledTimes", "responses": {"200": {"description": "Poll times"}, "503": {"description": "Feed ingestion is not enabled"}}}
        }
    },
    "definitions": {
        "Article": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "summary": {"type": "string"},
                "enhancedContent": {"type": "string"},
                "audioUrl": {"type": "string"},
                "sourceUrl": {"type": "string"},
                "sourceName": {"type": "string"},
                "category": {"type": "string"},
                "imageUrl": {"type": "string"},
                "duration": {"type": "integer"},
                "readTime": {"type": "integer"},
                "publishedAt": {"type": "string", "format": "date-time"},
                "isProcessed": {"type": "boolean"},
                "metadata": {"type": "object"}
            }
        },
        "InsertArticle": {
            "type": "object",
            "required": ["title", "content", "summary", "sourceUrl", "sourceName", "category"],
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "summary": {"type": "string"},
                "sourceUrl": {"type": "string"},
                "sourceName": {"type": "string"},
                "category": {"type": "string"},
                "imageUrl": {"type": "string"},
                "publishedAt": {"type": "string", "format": "date-time"}
            }
        },
        "ArticleRef": {
            "type": "object",
            "required": ["articleId"],
            "properties": {"articleId": {"type": "integer"}}
        },
        "Error": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "rule": {"type": "string"},
                            "message": {"type": "string"}
                        }
                    }
                }
            }
        }
    },
    "tags": [
        {"name": "Health", "description": "Health check endpoints"},
        {"name": "Articles", "description": "Article catalogue"},
        {"name": "Narration", "description": "AI enhancement and text to speech"},
        {"name": "Library", "description": "Favorites, playlists and downloads"},
        {"name": "History", "description": "Listening progress"},
        {"name": "Notifications", "description": "Notification feed"},
        {"name": "Media", "description": "Podcasts, shares and live streams"},
        {"name": "Identity", "description": "Current user"}
    ]
}`
