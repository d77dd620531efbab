// Package services contains the remote services of the banking API that sit
// beside authentication: dashboard figures and the user's profile and
// preferences. Each service unwraps the API envelope and returns the data
// or an error.
package services
