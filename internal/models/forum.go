package models

import "time"

// ForumPost is a Q&A thread. answersCount is maintained by increment on
// answer creation, not recomputed from the answers table.
type ForumPost struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	Upvotes      int       `json:"upvotes"`
	AnswersCount int       `json:"answersCount"`
	Solved       bool      `json:"solved"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ForumAnswer is a reply to a forum post
type ForumAnswer struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	AuthorID   string    `json:"authorId"`
	Content    string    `json:"content"`
	Upvotes    int       `json:"upvotes"`
	IsAccepted bool      `json:"isAccepted"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ForumPostWithAuthor joins a post with its author
type ForumPostWithAuthor struct {
	ForumPost
	Author User `json:"author"`
}

// ForumAnswerWithAuthor joins an answer with its author
type ForumAnswerWithAuthor struct {
	ForumAnswer
	Author User `json:"author"`
}

// ForumPostDetail is a post with its author and all answers
type ForumPostDetail struct {
	ForumPostWithAuthor
	Answers []ForumAnswerWithAuthor `json:"answers"`
}

// ForumPostInput is the validated payload for creating a forum post
type ForumPostInput struct {
	Title   string   `json:"title" binding:"required,max=300"`
	Content string   `json:"content" binding:"required,max=20000"`
	Tags    []string `json:"tags" binding:"omitempty,dive,max=50"`
}

// ForumAnswerInput is the validated payload for answering a post
type ForumAnswerInput struct {
	Content string `json:"content" binding:"required,max=20000"`
}
