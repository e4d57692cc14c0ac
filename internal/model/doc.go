// Package model defines the domain entities of the volunteer matching core.
//
// # Domain Entities
//
//   - Volunteer: user with up to three interests who applies to opportunities
//   - Organization: user who posts opportunities
//   - Opportunity: engagement tagged with one interest, owned by an organization
//   - Application: links a volunteer to an opportunity with a status
//
// User variants form a closed set: User is sealed and only *Volunteer and
// *Organization implement it. Services switch on the concrete type or on
// Role(), never on embedding.
//
// # Fluent Setup
//
// Entities are built with chained setters:
//
//	opp := org.CreateOpportunity().
//	    SetTitle("Beach cleanup").
//	    SetInterest("environment")
//
// # Error Types
//
// Domain errors are defined in errors.go. Each kind has a sentinel for
// errors.Is checks and a constructor carrying a detail message:
//
//	err := model.NewAuthorizationError("only your own opportunities")
//	errors.Is(err, model.ErrAuthorization) // true
package model
