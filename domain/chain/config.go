package chain

import (
	"github.com/swaplens/goapi/domain"
)

var (
	hyperevmUsde = domain.Token{Address: "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34", Symbol: "USDe", Decimals: 18}

	hyperevmTradingTokens = []domain.Token{
		{Address: "0xb8ce59fc3717ada4c02eadf9682a9e934f625ebb", Symbol: "USDT0", Decimals: 6},
		{Address: "0x02c6a2fa58cc01a18b8d9e00ea48d65e4df26c70", Symbol: "FEUSD", Decimals: 18},
		{Address: "0x5555555555555555555555555555555555555555", Symbol: "HYPE", Decimals: 18},
		{Address: "0xffaa4a3d97fe9107cef8a3f48c069f577ff76cc1", Symbol: "stHYPE", Decimals: 18},
		{Address: "0x5748ae796ae46a4f1348a1693de4b50560485562", Symbol: "LHYPE", Decimals: 18},
		{Address: "0xca79db4b49f608ef54a5cb813fbed3a6387bc645", Symbol: "USDXL", Decimals: 18},
		{Address: "0x9fdbda0a5e284c32744d2f17ee5c74b284993463", Symbol: "UBTC", Decimals: 8},
		{Address: "0x94e8396e0869c9f2200760af0621afd240e1cf38", Symbol: "WSTHYPE", Decimals: 18},
		{Address: "0x9b498c3c8a0b8cd8ba1d9851d40d186f1872b44e", Symbol: "PURR", Decimals: 18},
		{Address: "0xfD739d4e423301CE9385c1fb8850539D657C296D", Symbol: "kHYPE", Decimals: 18},
		{Address: "0xcb0ac0aa94c67dde8688ac34c8e4d6c18e78b638", Symbol: "LIQD", Decimals: 6},
		{Address: "0xf4d9235269a96aadafc9adae454a0618ebe37949", Symbol: "XAUTO", Decimals: 6},
		{Address: "0x27ec642013bcb3d80ca3706599d3cda04f6f4452", Symbol: "UPUMP", Decimals: 6},
		{Address: "0xb50A96253aBDF803D85efcDce07Ad8becBc52BD5", Symbol: "USDHL", Decimals: 6},
		hyperevmUsde,
	}

	plasmaUsdt0 = domain.Token{Address: "0xB8CE59FC3717ada4C02eaDF9682A9e934F625ebb", Symbol: "USDT0", Decimals: 6}

	plasmaTradingTokens = []domain.Token{
		{Address: "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", Symbol: "XPL", Decimals: 18},
		{Address: "0x5d3a1ff2b6bab83b63cd9ad0787074081a52ef34", Symbol: "USDe", Decimals: 18},
		{Address: "0x9895d81bb462a195b4922ed7de0e3acd007c32cb", Symbol: "WETH", Decimals: 18},
		{Address: "0x1B64B9025EEbb9A6239575dF9Ea4b9Ac46D4d193", Symbol: "XAUt0", Decimals: 6},
		{Address: "0xc4374775489cb9c56003bf2c9b12495fc64f0771", Symbol: "syrupUSDT", Decimals: 6},
		{Address: "0xA3D68b74bF0528fdD07263c60d6488749044914b", Symbol: "weETH", Decimals: 18},
		{Address: "0x0A1a1A107E45b7Ced86833863f482BC5f4ed82EF", Symbol: "USDai", Decimals: 18},
		{Address: "0x0B2b2B2076d95dda7817e785989fE353fe955ef9", Symbol: "sUSDai", Decimals: 18},
		{Address: "0x87e617C7484aDE79FcD90db58BEB82B057facb48", Symbol: "USDo", Decimals: 18},
		{Address: "0x6eAf19b2FC24552925dB245F9Ff613157a7dbb4C", Symbol: "XUSD", Decimals: 6},
		{Address: "0x92A01Ab7317Ac318b39b00EB6704ba56F0245D7a", Symbol: "trillions", Decimals: 18},
	}
)

// DefaultConfigs returns the built-in chain configs. Token decimals are
// maintained here by hand, entries are keyed on lowercased addresses at
// lookup time.
func DefaultConfigs() []Config {
	return []Config{
		{
			ChainId:            999,
			Blockchain:         "hyperevm",
			NormalizationToken: hyperevmUsde,
			TradingTokens:      hyperevmTradingTokens,
		},
		{
			ChainId:            9745,
			Blockchain:         "plasma",
			NormalizationToken: plasmaUsdt0,
			TradingTokens:      plasmaTradingTokens,
		},
	}
}
