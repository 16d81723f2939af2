// Package models holds the GORM table mappings. Domain entities stay free
// of ORM tags; each model here mirrors one aggregate or entity and converts
// both ways through ToDomain/FromDomain, which the repositories use at the
// database boundary.
//
// base.go carries the shared ID/timestamp/version columns, identity.go the
// users table, placement.go the student, company, round, placement,
// application, year and stats tables.
package models
