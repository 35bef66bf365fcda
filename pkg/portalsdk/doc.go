// Package portalsdk is the Go client for the artist portal API.
//
// SDKClient covers the unauthenticated endpoints. A Session holds the
// signed-in artist, persists them through a SessionStore and makes the
// authenticated calls:
//
//	client := portalsdk.NewSDKClient("http://localhost:3001")
//	store, _ := portalsdk.NewSQLiteSessionStore("session.db")
//	sess := portalsdk.NewSession(client, store)
//
//	if err := sess.Load(ctx); err != nil {
//		return err
//	}
//	if !sess.IsAuthenticated() {
//		if err := sess.Login(ctx, "alex@example.com", "password123"); err != nil {
//			return err
//		}
//	}
//
//	profile, err := sess.GetProfile(ctx)
//
// Protected views call Require first; it returns ErrNotAuthenticated when
// nobody is signed in. A 401 from the API means the server no longer
// accepts the session, so the Session drops it from memory and storage.
package portalsdk
