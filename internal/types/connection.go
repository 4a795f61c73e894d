package types

// Connection holds the parameters of one ADT HTTP session.
type Connection struct {
	Host     string
	Port     int
	Client   string
	User     string
	Password string
	NoSSL    bool
	Insecure bool
}

// SystemProfile is one named connection entry in a systems file.
type SystemProfile struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Client   string `yaml:"client"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	NoSSL    bool   `yaml:"no_ssl"`
	Insecure bool   `yaml:"insecure"`
}

// Connection converts the profile into connection parameters.
func (p SystemProfile) Connection() Connection {
	return Connection{
		Host:     p.Host,
		Port:     p.Port,
		Client:   p.Client,
		User:     p.User,
		Password: p.Password,
		NoSSL:    p.NoSSL,
		Insecure: p.Insecure,
	}
}

// SystemsFile is the on-disk layout of a systems YAML file.
type SystemsFile struct {
	Systems map[string]SystemProfile `yaml:"systems"`
}
