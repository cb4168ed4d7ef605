package lark

// Byte window register addresses.
const (
	RegVendorID   = 0x40000000
	RegDeviceID1  = 0x40000001
	RegDeviceID2  = 0x40000002
	RegRevision   = 0x40000003
	RegADCDACPwr  = 0x40000004
	RegPLLPwr     = 0x40000005
	RegClkCtrl1   = 0x40000010
	RegClkCtrl2   = 0x40000011
	RegPLLMul     = 0x40000012 // 0x12..0x13
	RegPLLNum     = 0x40000014 // 0x14..0x15
	RegPLLDen     = 0x40000016 // 0x16..0x17
	RegPLLUpdate  = 0x40000018
	RegClkStatus  = 0x40000019
	RegOscCalCtrl = 0x4000001A
	RegADCCtrl1   = 0x40000020
	RegADC0Vol    = 0x40000021 // one register per channel
	RegADCMute    = 0x40000024
	RegDACCtrl1   = 0x40000030
	RegDAC0Vol    = 0x40000031 // one register per channel
	RegDACMute    = 0x40000032
	RegSAPCtrl1   = 0x40000040
	RegSAPCtrl2   = 0x40000041
	RegFDSPCtrl   = 0x40000050
	RegEQCtrl     = 0x40000051
	RegSoftReset  = 0x400000F0
)

// Word window memories.
const (
	FDSPParamBase   = 0x40080000
	FDSPBankStride  = 0x1000
	FDSPParamsPerBk = FDSPBankStride / 4

	EQCoeffBase     = 0x40090000
	EQCoeffsPerBand = 5
)

var (
	fieldADCEn = func(ch int) Field { return Field{Addr: RegADCDACPwr, Start: uint8(ch), Count: 1} }
	fieldDACEn = func(ch int) Field { return Field{Addr: RegADCDACPwr, Start: uint8(4 + ch), Count: 1} }

	fieldPLLEn  = Field{Addr: RegPLLPwr, Start: 0, Count: 1}
	fieldXtalEn = Field{Addr: RegPLLPwr, Start: 2, Count: 1}

	fieldPLLSource  = Field{Addr: RegClkCtrl1, Start: 0, Count: 2}
	fieldPLLType    = Field{Addr: RegClkCtrl1, Start: 2, Count: 1}
	fieldSyncSource = Field{Addr: RegClkCtrl1, Start: 4, Count: 2}
	fieldXtalMode   = Field{Addr: RegClkCtrl1, Start: 6, Count: 1}
	fieldPLLBypass  = Field{Addr: RegClkCtrl1, Start: 7, Count: 1}

	fieldPLLPrescaler = Field{Addr: RegClkCtrl2, Start: 0, Count: 3}
	fieldMCLKFreq     = Field{Addr: RegClkCtrl2, Start: 4, Count: 2}

	fieldPLLMultiplier  = Field{Addr: RegPLLMul, Start: 0, Count: 12}
	fieldPLLNumerator   = Field{Addr: RegPLLNum, Start: 0, Count: 16}
	fieldPLLDenominator = Field{Addr: RegPLLDen, Start: 0, Count: 16}
	fieldPLLUpdate      = Field{Addr: RegPLLUpdate, Start: 0, Count: 1}

	fieldPLLLocked  = Field{Addr: RegClkStatus, Start: 0, Count: 1}
	fieldOscCalDone = Field{Addr: RegClkStatus, Start: 1, Count: 1}
	fieldOscCalGo   = Field{Addr: RegOscCalCtrl, Start: 0, Count: 1}

	fieldADCFs   = Field{Addr: RegADCCtrl1, Start: 0, Count: 4}
	fieldADCVol  = func(ch int) Field { return Field{Addr: RegADC0Vol + uint32(ch), Start: 0, Count: 8} }
	fieldADCMute = func(ch int) Field { return Field{Addr: RegADCMute, Start: uint8(ch), Count: 1} }

	fieldDACFs   = Field{Addr: RegDACCtrl1, Start: 0, Count: 4}
	fieldDACVol  = func(ch int) Field { return Field{Addr: RegDAC0Vol + uint32(ch), Start: 0, Count: 8} }
	fieldDACMute = func(ch int) Field { return Field{Addr: RegDACMute, Start: uint8(ch), Count: 1} }

	fieldSAPMode      = Field{Addr: RegSAPCtrl1, Start: 0, Count: 3}
	fieldSAPFormat    = Field{Addr: RegSAPCtrl1, Start: 4, Count: 2}
	fieldSAPSlotWidth = Field{Addr: RegSAPCtrl2, Start: 0, Count: 2}

	fieldFDSPRun  = Field{Addr: RegFDSPCtrl, Start: 0, Count: 1}
	fieldFDSPBank = Field{Addr: RegFDSPCtrl, Start: 4, Count: 2}
	fieldEQEn     = Field{Addr: RegEQCtrl, Start: 0, Count: 1}

	fieldSoftResetFull = Field{Addr: RegSoftReset, Start: 0, Count: 1}
	fieldSoftResetCore = Field{Addr: RegSoftReset, Start: 1, Count: 1}
)
