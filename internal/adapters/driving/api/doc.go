// Package api serves the pizza REST API over HTTP.
//
// Routes:
//
//	GET    /api/pizzas
//	POST   /api/pizzas                        single object or JSON array
//	GET    /api/pizzas/{id}
//	PUT    /api/pizzas/{id}
//	DELETE /api/pizzas/{id}
//	POST   /api/comments/{pizzaId}
//	PUT    /api/comments/{pizzaId}/{commentId}
//	DELETE /api/comments/{pizzaId}/{commentId}
//	DELETE /api/comments/{pizzaId}/{commentId}/{replyId}
//	GET    /metrics
//
// Errors are JSON objects with a single message field.
package api
