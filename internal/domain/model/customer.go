package model

import "strings"

// 注文者情報。チェックアウト成功時に保存して次回に再利用する。
type CustomerDetails struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Postal  string `json:"postal"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// 全項目をトリムした値を返す
func (d CustomerDetails) Trimmed() CustomerDetails {
	return CustomerDetails{
		Phone:   strings.TrimSpace(d.Phone),
		Email:   strings.TrimSpace(d.Email),
		Address: strings.TrimSpace(d.Address),
		Postal:  strings.TrimSpace(d.Postal),
		City:    strings.TrimSpace(d.City),
		Country: strings.TrimSpace(d.Country),
	}
}

// 6項目すべて必須
func (d CustomerDetails) Complete() bool {
	return d.Phone != "" && d.Email != "" && d.Address != "" &&
		d.Postal != "" && d.City != "" && d.Country != ""
}
