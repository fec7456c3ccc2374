package http

// Export for testing
var RegisterStatic = registerStatic

const UserIDKey = userIDKey
