package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the bearer
// token between the gateway and the identity service.
const AccessTokenHeaderName = "access_token"

// BearerScheme is the expected Authorization header scheme marker.
const BearerScheme = "Bearer "
