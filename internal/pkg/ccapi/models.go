package ccapi

// Capabilities are the per-device hardware support flags. They do not change
// for the lifetime of a device.
type Capabilities struct {
	AutoMode        bool `json:"autoMode"`
	CoolMode        bool `json:"coolMode"`
	DryMode         bool `json:"dryMode"`
	HeatMode        bool `json:"heatMode"`
	FanMode         bool `json:"fanMode"`
	Nanoe           bool `json:"nanoe"`
	NanoeStandAlone bool `json:"nanoeStandAlone"`
	EcoNavi         bool `json:"ecoNavi"`
	IAutoX          bool `json:"iAutoX"`
	QuietMode       bool `json:"quietMode"`
	PowerfulMode    bool `json:"powerfulMode"`
	AirSwingLR      bool `json:"airSwingLR"`
	AutoSwingUD     bool `json:"autoSwingUD"`
}

type ModeAvlList struct {
	AutoMode int `json:"autoMode"`
	FanMode  int `json:"fanMode"`
}

// Parameters holds device operating values. Every field is optional; nil
// means unknown or unset, which is distinct from a zero value.
type Parameters struct {
	Operate         *Power         `json:"operate,omitempty"`
	OperationMode   *OperationMode `json:"operationMode,omitempty"`
	TemperatureSet  *float64       `json:"temperatureSet,omitempty"`
	FanSpeed        *FanSpeed      `json:"fanSpeed,omitempty"`
	FanAutoMode     *FanAutoMode   `json:"fanAutoMode,omitempty"`
	AirSwingLR      *AirSwingLR    `json:"airSwingLR,omitempty"`
	AirSwingUD      *AirSwingUD    `json:"airSwingUD,omitempty"`
	AirDirection    *int           `json:"airDirection,omitempty"`
	EcoMode         *EcoMode       `json:"ecoMode,omitempty"`
	EcoFunctionData *int           `json:"ecoFunctionData,omitempty"`
	Nanoe           *NanoeMode     `json:"nanoe,omitempty"`
	ActualNanoe     *NanoeMode     `json:"actualNanoe,omitempty"`

	// read-only values reported by the device, never sent
	LastSettingMode   *int     `json:"lastSettingMode,omitempty"`
	EcoNavi           *int     `json:"ecoNavi,omitempty"`
	IAuto             *int     `json:"iAuto,omitempty"`
	AirQuality        *int     `json:"airQuality,omitempty"`
	InsideTemperature *float64 `json:"insideTemperature,omitempty"`
	OutTemperature    *float64 `json:"outTemperature,omitempty"`
}

// Device is the full status record for a single unit
type Device struct {
	DeviceGUID string `json:"deviceGuid"`
	Capabilities

	ModeAvlList      ModeAvlList `json:"modeAvlList"`
	PairedFlg        bool        `json:"pairedFlg"`
	Permission       int         `json:"permission"`
	SummerHouse      int         `json:"summerHouse"`
	Timestamp        int64       `json:"timestamp"`
	TemperatureUnit  int         `json:"temperatureUnit"`
	FanSpeedMode     int         `json:"fanSpeedMode"`
	FanDirectionMode int         `json:"fanDirectionMode"`
	EcoFunction      int         `json:"ecoFunction"`

	AutoTempMin float64 `json:"autoTempMin"`
	AutoTempMax float64 `json:"autoTempMax"`
	CoolTempMin float64 `json:"coolTempMin"`
	CoolTempMax float64 `json:"coolTempMax"`
	DryTempMin  float64 `json:"dryTempMin"`
	DryTempMax  float64 `json:"dryTempMax"`
	HeatTempMin float64 `json:"heatTempMin"`
	HeatTempMax float64 `json:"heatTempMax"`

	Parameters Parameters `json:"parameters"`
}

// GroupDevice is the lightweight device record returned by group discovery
type GroupDevice struct {
	DeviceGUID         string `json:"deviceGuid"`
	DeviceType         string `json:"deviceType"`
	DeviceName         string `json:"deviceName"`
	DeviceModuleNumber string `json:"deviceModuleNumber"`
	DeviceHashGUID     string `json:"deviceHashGuid"`
	Capabilities

	CoordinableFlg  bool        `json:"coordinableFlg"`
	Permission      int         `json:"permission"`
	SummerHouse     int         `json:"summerHouse"`
	EcoFunction     int         `json:"ecoFunction"`
	TemperatureUnit int         `json:"temperatureUnit"`
	ModeAvlList     ModeAvlList `json:"modeAvlList"`
	Parameters      Parameters  `json:"parameters"`
}

type Group struct {
	GroupID    int           `json:"groupId"`
	GroupName  string        `json:"groupName"`
	DeviceList []GroupDevice `json:"deviceList"`
}

type IaqStatus struct {
	StatusCode int `json:"statusCode"`
}

type GroupResponse struct {
	IaqStatus  IaqStatus `json:"iaqStatus"`
	UIFlg      bool      `json:"uiFlg"`
	GroupCount int       `json:"groupCount"`
	GroupList  []Group   `json:"groupList"`
}

type LoginRequest struct {
	Language int    `json:"language"`
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

func NewLoginRequest(username string, password string) LoginRequest {
	return LoginRequest{
		Language: 0,
		LoginID:  username,
		Password: password,
	}
}

type LoginResponse struct {
	Result   int    `json:"result"`
	UToken   string `json:"uToken"`
	ClientID string `json:"clientId"`
	Language int    `json:"language,omitempty"`
}

type ControlRequest struct {
	DeviceGUID string     `json:"deviceGuid"`
	Parameters Parameters `json:"parameters"`
}

// ErrorInfo describes why a control command failed
type ErrorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// UpdateResponse is the outcome of a control command. Status mirrors the
// remote `result` code, 0 meaning success; -1 means the command did not
// complete.
type UpdateResponse struct {
	Status     int        `json:"status"`
	StatusText string     `json:"statusText,omitempty"`
	Error      *ErrorInfo `json:"error,omitempty"`
}
