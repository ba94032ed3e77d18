// Package plan specializes format declarations into routines.
//
// Compilation pipeline, per declaration:
//  1. Parse the template into tokens (package format).
//  2. Look up the rule of every specifier slot in the registry; the slot
//     accepts the rule's kinds, narrowed by the declaration's Args.
//  3. Take the Cartesian product of slot kinds, first slot varying slowest;
//     every tuple becomes one straight-line Routine.
//  4. Name routines (Name + one kind suffix per slot, or the bare Name when
//     there is a single routine) and estimate the output capacity.
//
// Compile runs this for a whole manifest and reports failures as
// diagnostics. Routines can also be evaluated in-process with Render, with
// the same output the generated Go code produces.
package plan
