package core

import "slices"

// Document keys of a stored user.
const (
	KeyName     = "name"
	KeyEmail    = "email"
	KeyRollNo   = "roll_no"
	KeyContact  = "contact"
	KeyBorrowed = "borrowed"
	KeyReserved = "reserved"
)

// User is a library member. Borrowed and Reserved hold book ids in insertion order;
// a book id may appear in both lists at the same time.
type User struct {
	Name     string
	Email    string
	RollNo   RollNoString
	Contact  string
	Borrowed []BookIDString
	Reserved []BookIDString
}

// Users is an ordered list of members.
type Users = []User

// BuildUser creates a new User with empty borrowed and reserved lists.
func BuildUser(name string, email string, rollNo RollNoString, contact string) User {
	return User{
		Name:     name,
		Email:    email,
		RollNo:   rollNo,
		Contact:  contact,
		Borrowed: make([]BookIDString, 0),
		Reserved: make([]BookIDString, 0),
	}
}

// UserFromDocument converts a stored document into a User. Missing lists become empty lists.
func UserFromDocument(doc map[string]any) User {
	return User{
		Name:     stringField(doc, KeyName, ""),
		Email:    stringField(doc, KeyEmail, ""),
		RollNo:   stringField(doc, KeyRollNo, ""),
		Contact:  stringField(doc, KeyContact, ""),
		Borrowed: coerceStringList(doc[KeyBorrowed]),
		Reserved: coerceStringList(doc[KeyReserved]),
	}
}

// ToDocument converts the User into its stored form. Nil lists are stored as empty arrays.
func (u User) ToDocument() map[string]any {
	return map[string]any{
		KeyName:     u.Name,
		KeyEmail:    u.Email,
		KeyRollNo:   u.RollNo,
		KeyContact:  u.Contact,
		KeyBorrowed: nonNil(u.Borrowed),
		KeyReserved: nonNil(u.Reserved),
	}
}

// HasBorrowed reports whether the book id is in the borrowed list.
func (u User) HasBorrowed(itemID BookIDString) bool {
	return slices.Contains(u.Borrowed, itemID)
}

// HasReserved reports whether the book id is in the reserved list.
func (u User) HasReserved(itemID BookIDString) bool {
	return slices.Contains(u.Reserved, itemID)
}

// Clone returns a deep copy so decisions never alias the loaded lists.
func (u User) Clone() User {
	u.Borrowed = slices.Clone(nonNil(u.Borrowed))
	u.Reserved = slices.Clone(nonNil(u.Reserved))

	return u
}

// IndexOfUser returns the position of the FIRST user with the given roll number, or -1.
func IndexOfUser(users Users, rollNo RollNoString) int {
	return slices.IndexFunc(users, func(u User) bool {
		return u.RollNo == rollNo
	})
}

// CloneUsers deep-copies a list of users.
func CloneUsers(users Users) Users {
	cloned := make(Users, len(users))
	for i, u := range users {
		cloned[i] = u.Clone()
	}

	return cloned
}

// RemoveID returns the list without the first occurrence of itemID and whether one was removed.
func RemoveID(ids []BookIDString, itemID BookIDString) ([]BookIDString, bool) {
	i := slices.Index(ids, itemID)
	if i < 0 {
		return ids, false
	}

	return slices.Delete(slices.Clone(ids), i, i+1), true
}

// RemoveAllIDs returns the list without any occurrence of itemID and how many were removed.
func RemoveAllIDs(ids []BookIDString, itemID BookIDString) ([]BookIDString, int) {
	kept := make([]BookIDString, 0, len(ids))
	for _, id := range ids {
		if id != itemID {
			kept = append(kept, id)
		}
	}

	return kept, len(ids) - len(kept)
}

func nonNil(ids []BookIDString) []BookIDString {
	if ids == nil {
		return make([]BookIDString, 0)
	}

	return ids
}
