package types

// Farm module event types
const (
	EventTypeBootstrap         = "farm_bootstrap"
	EventTypeInitializePool    = "farm_initialize_pool"
	EventTypeDeposit           = "farm_deposit"
	EventTypeWithdraw          = "farm_withdraw"
	EventTypeEmergencyWithdraw = "farm_emergency_withdraw"
	EventTypeUpdateProjectInfo = "farm_update_project_info"
	EventTypeSetBonusTime      = "farm_set_bonus_time"
	EventTypeUpdateEndBlock    = "farm_update_end_block"
	EventTypeClosePosition     = "farm_close_position"
	EventTypeRewardPaid        = "farm_reward_paid"
)

// Farm module event attribute keys
const (
	AttributeKeyPoolIndex  = "pool_index"
	AttributeKeyOwner      = "owner"
	AttributeKeyDepositor  = "depositor"
	AttributeKeyAmount     = "amount"
	AttributeKeyReward     = "reward"
	AttributeKeyStaked     = "staked_amount"
	AttributeKeyStartTime  = "start_time"
	AttributeKeyEndTime    = "end_time"
	AttributeKeyMultiplier = "multiplier"
	AttributeKeyAuthority  = "authority"
)
