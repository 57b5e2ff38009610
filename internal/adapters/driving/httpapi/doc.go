// Package httpapi exposes the document and chat services over a JSON HTTP API.
//
// Routes:
//
//	GET    /health
//	GET    /api/auth/me
//	GET    /api/documents
//	POST   /api/documents                (admin)
//	GET    /api/documents/export         (admin)
//	POST   /api/documents/import-bulk    (admin)
//	GET    /api/documents/{id}
//	PUT    /api/documents/{id}           (admin)
//	DELETE /api/documents/{id}           (admin)
//	GET    /api/search?q=...&limit=...&ids=1,2
//	POST   /api/chat                     (also /api/ai/chat)
//
// Every /api route needs an identity; see IdentityResolver. Errors are
// returned as {"detail": "..."}.
package httpapi
