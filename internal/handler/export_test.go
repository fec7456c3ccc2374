package handler

// Export for testing
type CommentResponse = commentResponse
type MangaListItemResponse = mangaListItemResponse
type MangaDetailResponse = mangaDetailResponse
type ChapterResponse = chapterResponse
type TagResponse = tagResponse
type LoginResponse = loginResponse
type IncrementViewsResponse = incrementViewsResponse
type RateLimitResponse = rateLimitResponse
type MessageResponse = messageResponse

var WriteServiceError = writeServiceError
var ClientIP = clientIP
