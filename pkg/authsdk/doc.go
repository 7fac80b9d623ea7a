/*
Package authsdk provides a client SDK for the doorman authentication service,
along with the request, response and error types the server itself uses.

# Overview

Create an SDKClient and call the public endpoints directly:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Create an account; the response carries an access token
	tok, err := client.Register(ctx, authsdk.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})

	// Log in again later
	tok, err = client.Login(ctx, authsdk.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})

	// Look up who the token belongs to
	me, err := client.Me(ctx, tok.AccessToken)

Access tokens are HS256 JWTs that expire one hour after issue. There is no
refresh flow; log in again to get a new token.

# Error Handling

Every non-2xx response is returned as an *APIError carrying the status code
and the name, message and details of the error envelope. The predefined
errors match with errors.Is on status and name:

	_, err := client.Login(ctx, req)
	switch {
	case errors.Is(err, authsdk.ErrInvalidCredentials):
		// wrong password
	case errors.Is(err, authsdk.NewNotFoundError("")):
		// email not registered
	}

# Validation

The server applies no field rules of its own: login is decided by the email
lookup and password check, and registration by the duplicate check and
bcrypt. RegisterRequest.Validate only flags passwords bcrypt cannot hash,
and Register runs it before sending unless ValidateRequests is false.
*/
package authsdk
