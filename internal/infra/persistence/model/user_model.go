package model

import "time"

// UserModel mirrors documents in the 'users' collection, keyed by identity uid.
type UserModel struct {
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	PhotoURL    string    `firestore:"photoURL"`
	Role        string    `firestore:"role"`
	Phone       string    `firestore:"phone"`
	Bio         string    `firestore:"bio"`
	Verified    bool      `firestore:"verified"`
	CreatedAt   time.Time `firestore:"createdAt"`
}
