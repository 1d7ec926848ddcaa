package models

import "time"

// LocalSession is the client-side cached sign-in state. It is written to the
// local state file after a successful login and reused on the next start so
// the user does not have to authenticate again while the token is valid.
type LocalSession struct {
	UserID int64     `json:"user_id"`
	Token  string    `json:"token"`
	At     time.Time `json:"at"`
}
