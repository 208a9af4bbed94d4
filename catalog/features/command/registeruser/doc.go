// Package registeruser implements the Register User use case.
//
// Roll numbers identify members, so registering a second member with a roll number that is
// already taken is rejected with core.ErrDuplicateRollNo.
package registeruser
