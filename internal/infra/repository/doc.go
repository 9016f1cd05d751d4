// Package repository persists accepted submissions. Each table is written
// once per request and never read back.
package repository

//go:generate mockgen -source=waitlist.go -destination=../../../tests/mock/repository/waitlist.go -package=repositorymock
//go:generate mockgen -source=contact.go -destination=../../../tests/mock/repository/contact.go -package=repositorymock
//go:generate mockgen -source=feedback.go -destination=../../../tests/mock/repository/feedback.go -package=repositorymock
