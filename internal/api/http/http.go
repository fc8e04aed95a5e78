package http

type Config struct {
	Port     uint   `mapstructure:"port"`
	AdminKey string `mapstructure:"admin_key"`
}
