// Package storage is the client's durable key/value area: the Go counterpart
// of browser local storage. Values survive process restarts in an SQLite
// file whose schema is managed by embedded goose migrations.
//
// Repository is the raw key/value contract; SessionStore layers the
// persisted session record (keys "auth_token" and "user") on top of it.
package storage
