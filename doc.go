// Package notex is the Composition Root for the notex note keeper.
//
// It connects the core business logic (Domain Layer) with the filesystem adapter
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Every note lives in its own plain-text file, note_<id>.txt, inside one flat
// directory. The first three lines hold the title, the priority and the creation
// timestamp; everything after them is the note body, kept verbatim.
//
// Features:
//
//   - **Plain Files**: Notes stay readable and editable with any text editor.
//   - **Stable IDs**: IDs are never reused, not even after the newest note is deleted.
//   - **Atomic Writes**: A crash mid-save never leaves a half-written note behind.
//   - **Editor Session**: Create/edit state machine with unsaved-change detection.
//   - **Reactive**: Watch reports changes made by other processes.
//
// Usage:
//
//	store, err := notex.Open(ctx, "./notes", notex.WithLogger(logger))
//
//	note, err := store.Create(ctx, "Buy milk", notex.PriorityLow, "2%")
//
//	session := notex.NewSession(store)
//	form, err := session.BeginEdit(note.ID)
package notex
