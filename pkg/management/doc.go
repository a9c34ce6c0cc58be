// Package management contains the models of the Polaris Management Service
// API. The model_*.go files are generated by polaris-modelgen from
// polaris-management-service.yml; every model registers its descriptor and
// decoder with Registry at init.
//
// Models are immutable values. Construct them with the New functions (required
// fields are positional, optional fields are options), decode them with the
// FromWire functions, and encode them with ToWire or encoding/json.
package management

//go:generate go run ../../cmd/polaris-modelgen -spec polaris-management-service.yml -out . -package management -schemas AwsIamServiceIdentityInfo,AwsStorageConfigInfo,Principal,PrincipalWithCredentials,PrincipalWithCredentialsCredentials,ServiceIdentityInfo
