// Package user implements the credential store: the user account model, field
// validation, password hashing and policy, and the repository-backed
// UserService that the HTTP layer calls into.
//
// Two UserRepository implementations are provided: a PostgreSQL repository for
// production and an in-memory repository for tests and single-process
// deployments (DATABASE_USE_IN_MEMORY=true).
package user
