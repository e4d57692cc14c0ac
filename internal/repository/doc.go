// Package repository implements the in-memory data access layer.
//
// Each repository holds one entity type for the lifetime of the process.
// Nothing is persisted.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) returns an empty repository
//   - Save inserts new records and replaces existing ones in place
//   - Lookups scan linearly and return records in insertion order
//   - Mutations are serialized with a mutex so scan-then-mutate stays atomic
//
// # Identifiers
//
// Opportunities and applications get sequential integer ids on their first
// save, starting at 1. Ids are never reused, even after a delete. Users are
// keyed by email instead.
//
// # Delete Semantics
//
// Deleting an unknown opportunity returns model.ErrNotFound. Deleting an
// unknown application is silently ignored. Deletes never cascade.
//
// # Example Usage
//
//	repo := NewOpportunityRepository()
//	opp := repo.Save(org.CreateOpportunity().SetTitle("Cleanup"))
//	if err := repo.Delete(opp); err != nil {
//	    if errors.Is(err, model.ErrNotFound) {
//	        // Handle not found
//	    }
//	    return err
//	}
package repository
