package midtrans

// EnvironmentType selects between the gateway's sandbox and production hosts
type EnvironmentType int8

const (
	// Sandbox targets the staging gateway; credentials and money are not real
	Sandbox EnvironmentType = iota + 1

	// Production targets the live gateway
	Production
)

// BaseUrl returns the Core API host for the environment
func (e EnvironmentType) BaseUrl() string {
	if e == Production {
		return "https://api.midtrans.com"
	}
	return "https://api.sandbox.midtrans.com"
}

// SnapBaseUrl returns the Snap API host for the environment
func (e EnvironmentType) SnapBaseUrl() string {
	if e == Production {
		return "https://app.midtrans.com"
	}
	return "https://app.sandbox.midtrans.com"
}

// IrisBaseUrl returns the Iris disbursement API base URL for the environment
func (e EnvironmentType) IrisBaseUrl() string {
	if e == Production {
		return "https://app.midtrans.com/iris/api/v1"
	}
	return "https://app.sandbox.midtrans.com/iris/api/v1"
}

// SnapBIBaseUrl returns the SNAP open-banking host for the environment
func (e EnvironmentType) SnapBIBaseUrl() string {
	if e == Production {
		return "https://merchants.midtrans.com"
	}
	return "https://merchants.sbx.midtrans.com"
}
